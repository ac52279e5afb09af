package handler

import (
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles the administrative settlement trigger.
type SettlementHandler struct {
	settlementSvc ports.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementSvc ports.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementSvc: settlementSvc}
}

// Run handles POST /api/v1/admin/settlements/run. It executes one
// settlement batch synchronously and returns the per-hold outcomes.
func (h *SettlementHandler) Run(c *gin.Context) {
	result, err := h.settlementSvc.ProcessDueReleases(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
