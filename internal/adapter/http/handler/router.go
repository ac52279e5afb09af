package handler

import (
	"merchant-reserve-engine/internal/adapter/http/middleware"
	"merchant-reserve-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ReserveSvc     ports.ReserveService
	SettlementSvc  ports.SettlementService
	RiskSvc        ports.RiskService
	ChargebackSvc  ports.ChargebackService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Actor())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Deep health check, pings PostgreSQL and Redis.
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	v1 := r.Group("/api/v1")

	// --- Merchant profiles, reserve ledger, risk posture ---
	riskHandler := NewRiskHandler(deps.RiskSvc)
	reserveHandler := NewReserveHandler(deps.ReserveSvc)
	chargebackHandler := NewChargebackHandler(deps.ChargebackSvc)

	profiles := v1.Group("/profiles")
	{
		profiles.POST("", riskHandler.CreateProfile)
		profiles.GET("/due-for-review", riskHandler.ListDueForReview)
		profiles.GET("/:id", riskHandler.GetProfile)
		profiles.POST("/:id/assessments", riskHandler.PerformAssessment)

		profiles.GET("/:id/reserve", reserveHandler.GetSummary)
		profiles.GET("/:id/reserve/history", reserveHandler.GetHistory)
		profiles.POST("/:id/reserve/holds", reserveHandler.CreateHold)
		profiles.POST("/:id/reserve/releases", reserveHandler.Release)
		profiles.POST("/:id/reserve/adjustments", reserveHandler.Adjust)

		profiles.GET("/:id/chargebacks/stats", chargebackHandler.GetStats)
	}

	assessments := v1.Group("/assessments")
	{
		assessments.POST("/:id/approve", riskHandler.ApproveAssessment)
	}

	// --- Dispute lifecycle ---
	chargebacks := v1.Group("/chargebacks")
	{
		chargebacks.POST("", chargebackHandler.Create)
		chargebacks.GET("", chargebackHandler.List)
		chargebacks.GET("/approaching-deadline", chargebackHandler.GetApproachingDeadline)
		chargebacks.GET("/external/:external_id", chargebackHandler.GetByExternalID)
		chargebacks.GET("/:id", chargebackHandler.Get)
		chargebacks.PATCH("/:id", chargebackHandler.Update)
		chargebacks.POST("/:id/representment", chargebackHandler.SubmitRepresentment)
		chargebacks.POST("/:id/resolve", chargebackHandler.Resolve)
	}

	// --- Operations ---
	settlementHandler := NewSettlementHandler(deps.SettlementSvc)
	admin := v1.Group("/admin")
	{
		admin.POST("/settlements/run", settlementHandler.Run)
	}

	return r
}
