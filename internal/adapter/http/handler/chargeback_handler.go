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
	"github.com/google/uuid"
)

// ChargebackHandler handles dispute lifecycle endpoints.
type ChargebackHandler struct {
	chargebackSvc ports.ChargebackService
}

// NewChargebackHandler creates a new ChargebackHandler.
func NewChargebackHandler(chargebackSvc ports.ChargebackService) *ChargebackHandler {
	return &ChargebackHandler{chargebackSvc: chargebackSvc}
}

// Create handles POST /api/v1/chargebacks.
func (h *ChargebackHandler) Create(c *gin.Context) {
	var req dto.CreateChargebackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		response.Error(c, apperror.Validation("profile_id must be a valid UUID"))
		return
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	fee, err := parseOptionalAmount("fee", req.Fee)
	if err != nil {
		response.Error(c, err)
		return
	}

	cb, err := h.chargebackSvc.Create(c.Request.Context(), ports.CreateChargebackRequest{
		ExternalID:        req.ExternalID,
		ProfileID:         profileID,
		Amount:            amount,
		Fee:               fee,
		ReasonCode:        req.ReasonCode,
		ReasonDescription: req.ReasonDescription,
		RespondBy:         req.RespondBy,
		Actor:             middleware.ActorFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, cb)
}

// Get handles GET /api/v1/chargebacks/:id.
func (h *ChargebackHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	cb, err := h.chargebackSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cb)
}

// GetByExternalID handles GET /api/v1/chargebacks/external/:external_id.
func (h *ChargebackHandler) GetByExternalID(c *gin.Context) {
	cb, err := h.chargebackSvc.GetByExternalID(c.Request.Context(), c.Param("external_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cb)
}

// List handles GET /api/v1/chargebacks.
func (h *ChargebackHandler) List(c *gin.Context) {
	page, pageSize := paging(c)
	params := ports.ChargebackListParams{
		From:     queryTime(c, "from"),
		To:       queryTime(c, "to"),
		Page:     page,
		PageSize: pageSize,
	}
	if p := c.Query("profile_id"); p != "" {
		id, err := uuid.Parse(p)
		if err != nil {
			response.Error(c, apperror.Validation("profile_id must be a valid UUID"))
			return
		}
		params.ProfileID = &id
	}
	if s := c.Query("status"); s != "" {
		status := domain.ChargebackStatus(s)
		params.Status = &status
	}
	if r := c.Query("reason_code"); r != "" {
		params.ReasonCode = &r
	}

	items, total, err := h.chargebackSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paged(c, items, total, page, pageSize)
}

// Update handles PATCH /api/v1/chargebacks/:id.
func (h *ChargebackHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateChargebackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cb, err := h.chargebackSvc.UpdateMetadata(c.Request.Context(), id, ports.UpdateChargebackRequest{
		ReasonDescription: req.ReasonDescription,
		RespondBy:         req.RespondBy,
		ResolutionNotes:   req.ResolutionNotes,
		Actor:             middleware.ActorFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cb)
}

// SubmitRepresentment handles POST /api/v1/chargebacks/:id/representment.
func (h *ChargebackHandler) SubmitRepresentment(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.RepresentmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cb, err := h.chargebackSvc.SubmitRepresentment(c.Request.Context(), id, domain.Document(req.Evidence), req.Notes, middleware.ActorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cb)
}

// Resolve handles POST /api/v1/chargebacks/:id/resolve.
func (h *ChargebackHandler) Resolve(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ResolveChargebackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	debit, err := parseOptionalAmount("reserve_debit_amount", req.ReserveDebitAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	recovered, err := parseOptionalAmount("recovered_amount", req.RecoveredAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	cb, err := h.chargebackSvc.Resolve(c.Request.Context(), id, ports.ResolveChargebackRequest{
		Outcome:            domain.ChargebackStatus(req.Outcome),
		ImpactReserve:      req.ImpactReserve,
		ReserveDebitAmount: debit,
		RecoveredAmount:    recovered,
		FeeRefunded:        req.FeeRefunded,
		Notes:              req.Notes,
		Actor:              middleware.ActorFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, cb)
}

// GetStats handles GET /api/v1/profiles/:id/chargebacks/stats.
func (h *ChargebackHandler) GetStats(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	stats, err := h.chargebackSvc.GetStats(c.Request.Context(), profileID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}

// GetApproachingDeadline handles GET /api/v1/chargebacks/approaching-deadline.
func (h *ChargebackHandler) GetApproachingDeadline(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	items, err := h.chargebackSvc.GetApproachingDeadline(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, items)
}
