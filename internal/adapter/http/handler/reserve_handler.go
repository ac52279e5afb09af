package handler

import (
	"merchant-reserve-engine/internal/adapter/http/dto"
	"merchant-reserve-engine/internal/adapter/http/middleware"
	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/pkg/apperror"
	"merchant-reserve-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReserveHandler handles reserve ledger endpoints.
type ReserveHandler struct {
	reserveSvc ports.ReserveService
}

// NewReserveHandler creates a new ReserveHandler.
func NewReserveHandler(reserveSvc ports.ReserveService) *ReserveHandler {
	return &ReserveHandler{reserveSvc: reserveSvc}
}

// CreateHold handles POST /api/v1/profiles/:id/reserve/holds.
func (h *ReserveHandler) CreateHold(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := parseAmount("source_amount", req.SourceAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	var pct *decimal.Decimal // nil lets the service apply the configured default
	if req.ReservePercentage != nil {
		parsed, err := parseAmount("reserve_percentage", *req.ReservePercentage)
		if err != nil {
			response.Error(c, err)
			return
		}
		pct = &parsed
	}
	holdDays := 0
	if req.HoldDays != nil {
		holdDays = *req.HoldDays
	}

	entry, err := h.reserveSvc.CreateHold(c.Request.Context(), ports.CreateHoldRequest{
		ProfileID:           profileID,
		SourceTransactionID: req.SourceTransactionID,
		SourceAmount:        amount,
		ReservePercentage:   pct,
		HoldDays:            holdDays,
		Actor:               middleware.ActorFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, entry)
}

// Release handles POST /api/v1/profiles/:id/reserve/releases.
func (h *ReserveHandler) Release(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.reserveSvc.Release(c.Request.Context(), ports.ReleaseRequest{
		ProfileID:   profileID,
		Amount:      amount,
		Description: req.Description,
		Actor:       middleware.ActorFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, entry)
}

// Adjust handles POST /api/v1/profiles/:id/reserve/adjustments.
func (h *ReserveHandler) Adjust(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.reserveSvc.Adjust(c.Request.Context(), ports.AdjustRequest{
		ProfileID:   profileID,
		Amount:      amount,
		Description: req.Description,
		Actor:       middleware.ActorFrom(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, entry)
}

// GetSummary handles GET /api/v1/profiles/:id/reserve.
func (h *ReserveHandler) GetSummary(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	summary, err := h.reserveSvc.GetSummary(c.Request.Context(), profileID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, summary)
}

// GetHistory handles GET /api/v1/profiles/:id/reserve/history.
func (h *ReserveHandler) GetHistory(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	page, pageSize := paging(c)
	params := ports.LedgerListParams{
		ProfileID: profileID,
		From:      queryTime(c, "from"),
		To:        queryTime(c, "to"),
		Page:      page,
		PageSize:  pageSize,
	}
	if t := c.Query("type"); t != "" {
		entryType := domain.EntryType(t)
		if !entryType.Valid() {
			response.Error(c, apperror.Validation("type must be a known entry type"))
			return
		}
		params.EntryType = &entryType
	}

	entries, total, err := h.reserveSvc.GetHistory(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paged(c, entries, total, page, pageSize)
}
