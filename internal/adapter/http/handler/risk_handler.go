package handler

import (
	"strconv"

	"merchant-reserve-engine/internal/adapter/http/dto"
	"merchant-reserve-engine/internal/adapter/http/middleware"
	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/pkg/apperror"
	"merchant-reserve-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// RiskHandler handles merchant profile and risk assessment endpoints.
type RiskHandler struct {
	riskSvc ports.RiskService
}

// NewRiskHandler creates a new RiskHandler.
func NewRiskHandler(riskSvc ports.RiskService) *RiskHandler {
	return &RiskHandler{riskSvc: riskSvc}
}

// CreateProfile handles POST /api/v1/profiles.
func (h *RiskHandler) CreateProfile(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	profile, err := h.riskSvc.CreateProfile(c.Request.Context(), ports.CreateProfileRequest{
		MerchantName:      req.MerchantName,
		MCC:               req.MCC,
		BusinessStartDate: req.BusinessStartDate,
		Actor:             middleware.ActorFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, profile)
}

// GetProfile handles GET /api/v1/profiles/:id.
func (h *RiskHandler) GetProfile(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	profile, err := h.riskSvc.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profile)
}

// ListDueForReview handles GET /api/v1/profiles/due-for-review.
func (h *RiskHandler) ListDueForReview(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	profiles, err := h.riskSvc.ListProfilesDueForReview(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profiles)
}

// PerformAssessment handles POST /api/v1/profiles/:id/assessments.
func (h *RiskHandler) PerformAssessment(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	assessment, err := h.riskSvc.PerformAssessment(c.Request.Context(), ports.AssessmentRequest{
		ProfileID:      profileID,
		AssessmentType: domain.AssessmentType(req.AssessmentType),
		Actor:          middleware.ActorFrom(c),
		AIAssisted:     req.AIAssisted,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, assessment)
}

// ApproveAssessment handles POST /api/v1/assessments/:id/approve.
func (h *RiskHandler) ApproveAssessment(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	assessment, err := h.riskSvc.ApproveAssessment(c.Request.Context(), id, middleware.ActorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, assessment)
}
