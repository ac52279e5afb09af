package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/internal/core/ports/mocks"
	"merchant-reserve-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	reserveSvc    *mocks.MockReserveService
	settlementSvc *mocks.MockSettlementService
	riskSvc       *mocks.MockRiskService
	chargebackSvc *mocks.MockChargebackService
	ctrl          *gomock.Controller
}

func setupTestRouter(t *testing.T, checkers ...ports.HealthChecker) (*gin.Engine, *routerMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		reserveSvc:    mocks.NewMockReserveService(ctrl),
		settlementSvc: mocks.NewMockSettlementService(ctrl),
		riskSvc:       mocks.NewMockRiskService(ctrl),
		chargebackSvc: mocks.NewMockChargebackService(ctrl),
		ctrl:          ctrl,
	}
	r := SetupRouter(RouterDeps{
		ReserveSvc:     m.reserveSvc,
		SettlementSvc:  m.settlementSvc,
		RiskSvc:        m.riskSvc,
		ChargebackSvc:  m.chargebackSvc,
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
	})
	return r, m
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

// ==================== Reserve Endpoints ====================

func TestCreateHold_Created(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	entry := &domain.ReserveTransaction{
		ID:        uuid.New(),
		ProfileID: profileID,
		EntryType: domain.EntryTypeHold,
		Amount:    decimal.NewFromInt(1000),
	}
	m.reserveSvc.EXPECT().CreateHold(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateHoldRequest) (*domain.ReserveTransaction, error) {
			assert.Equal(t, profileID, req.ProfileID)
			assert.Equal(t, "txn_001", req.SourceTransactionID)
			assert.True(t, req.SourceAmount.Equal(decimal.NewFromInt(10000)))
			require.NotNil(t, req.ReservePercentage)
			assert.True(t, req.ReservePercentage.Equal(decimal.NewFromFloat(0.10)))
			assert.Equal(t, 90, req.HoldDays)
			return entry, nil
		})

	w := doJSON(r, http.MethodPost, "/api/v1/profiles/"+profileID.String()+"/reserve/holds", map[string]any{
		"source_transaction_id": "txn_001",
		"source_amount":         "10000",
		"reserve_percentage":    "0.10",
		"hold_days":             90,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "HOLD", data["entry_type"])
}

func TestCreateHold_MissingSourceTransactionID(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	w := doJSON(r, http.MethodPost, "/api/v1/profiles/"+profileID.String()+"/reserve/holds", map[string]any{
		"source_amount": "10000",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestCreateHold_NonDecimalAmount(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	w := doJSON(r, http.MethodPost, "/api/v1/profiles/"+profileID.String()+"/reserve/holds", map[string]any{
		"source_transaction_id": "txn_001",
		"source_amount":         "ten dollars",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "source_amount")
}

func TestCreateHold_InvalidProfileID(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	w := doJSON(r, http.MethodPost, "/api/v1/profiles/not-a-uuid/reserve/holds", map[string]any{
		"source_transaction_id": "txn_001",
		"source_amount":         "10000",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelease_BusinessErrorMapsToStatus(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	m.reserveSvc.EXPECT().Release(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientReserve())

	w := doJSON(r, http.MethodPost, "/api/v1/profiles/"+profileID.String()+"/reserve/releases", map[string]any{
		"amount": "99999",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "RES_001")
}

func TestGetSummary_OK(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	m.reserveSvc.EXPECT().GetSummary(gomock.Any(), profileID).Return(&ports.ReserveSummary{
		ProfileID: profileID,
		Balance:   decimal.NewFromInt(1500),
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/profiles/"+profileID.String()+"/reserve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "1500", data["balance"])
}

func TestGetHistory_PagedEnvelope(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	m.reserveSvc.EXPECT().GetHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.LedgerListParams) ([]domain.ReserveTransaction, int64, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 10, params.PageSize)
			require.NotNil(t, params.EntryType)
			assert.Equal(t, domain.EntryTypeHold, *params.EntryType)
			return []domain.ReserveTransaction{{ID: uuid.New(), ProfileID: profileID}}, 21, nil
		})

	w := doJSON(r, http.MethodGet, "/api/v1/profiles/"+profileID.String()+"/reserve/history?page=2&page_size=10&type=HOLD", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(21), data["total"])
	assert.Equal(t, float64(3), data["total_pages"])
}

func TestGetHistory_UnknownEntryType(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	w := doJSON(r, http.MethodGet, "/api/v1/profiles/"+profileID.String()+"/reserve/history?type=BOGUS", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ==================== Profile & Risk Endpoints ====================

func TestCreateProfile_Created(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	m.riskSvc.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateProfileRequest) (*domain.MerchantRiskProfile, error) {
			assert.Equal(t, "Corner Grocery", req.MerchantName)
			assert.Equal(t, "5411", req.MCC)
			return &domain.MerchantRiskProfile{
				ID:           uuid.New(),
				MerchantName: req.MerchantName,
				MCC:          req.MCC,
				RiskLevel:    domain.RiskLevelStandard,
			}, nil
		})

	w := doJSON(r, http.MethodPost, "/api/v1/profiles", map[string]any{
		"merchant_name": "Corner Grocery",
		"mcc":           "5411",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "STANDARD", data["risk_level"])
}

func TestCreateProfile_RejectsBadMCC(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	w := doJSON(r, http.MethodPost, "/api/v1/profiles", map[string]any{
		"merchant_name": "Corner Grocery",
		"mcc":           "54x1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPerformAssessment_ActorHeaderPropagates(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	m.riskSvc.EXPECT().PerformAssessment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.AssessmentRequest) (*domain.RiskAssessment, error) {
			assert.Equal(t, profileID, req.ProfileID)
			assert.Equal(t, domain.AssessmentTypeManual, req.AssessmentType)
			assert.Equal(t, "analyst-7", req.Actor)
			assert.True(t, req.AIAssisted)
			return &domain.RiskAssessment{ID: uuid.New(), ProfileID: profileID}, nil
		})

	body, _ := json.Marshal(map[string]any{
		"assessment_type": "MANUAL",
		"ai_assisted":     true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles/"+profileID.String()+"/assessments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor", "analyst-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPerformAssessment_RejectsUnknownType(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	w := doJSON(r, http.MethodPost, "/api/v1/profiles/"+profileID.String()+"/assessments", map[string]any{
		"assessment_type": "WEEKLY",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveAssessment_OK(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	assessmentID := uuid.New()
	m.riskSvc.EXPECT().ApproveAssessment(gomock.Any(), assessmentID, "api").
		Return(&domain.RiskAssessment{ID: assessmentID}, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/assessments/"+assessmentID.String()+"/approve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListDueForReview_OK(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	m.riskSvc.EXPECT().ListProfilesDueForReview(gomock.Any(), 5).
		Return([]domain.MerchantRiskProfile{{ID: uuid.New()}}, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/profiles/due-for-review?limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// ==================== Chargeback Endpoints ====================

func TestCreateChargeback_Created(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	m.chargebackSvc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateChargebackRequest) (*domain.ChargebackRecord, error) {
			assert.Equal(t, "CB-2024-0001", req.ExternalID)
			assert.Equal(t, profileID, req.ProfileID)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(5000)))
			assert.True(t, req.Fee.Equal(decimal.NewFromInt(150)))
			return &domain.ChargebackRecord{
				ID:         uuid.New(),
				ExternalID: req.ExternalID,
				Status:     domain.ChargebackStatusReceived,
			}, nil
		})

	w := doJSON(r, http.MethodPost, "/api/v1/chargebacks", map[string]any{
		"external_id": "CB-2024-0001",
		"profile_id":  profileID.String(),
		"amount":      "5000",
		"fee":         "150",
		"reason_code": "10.4",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "RECEIVED", data["status"])
}

func TestCreateChargeback_DuplicateConflict(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	m.chargebackSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrDuplicateChargeback("CB-2024-0001"))

	w := doJSON(r, http.MethodPost, "/api/v1/chargebacks", map[string]any{
		"external_id": "CB-2024-0001",
		"profile_id":  uuid.New().String(),
		"amount":      "5000",
		"reason_code": "10.4",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CBK_001")
}

func TestCreateChargeback_UnsafeExternalID(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	w := doJSON(r, http.MethodPost, "/api/v1/chargebacks", map[string]any{
		"external_id": "CB 2024; DROP TABLE",
		"profile_id":  uuid.New().String(),
		"amount":      "5000",
		"reason_code": "10.4",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveChargeback_LostWithDebit(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	id := uuid.New()
	m.chargebackSvc.EXPECT().Resolve(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req ports.ResolveChargebackRequest) (*domain.ChargebackRecord, error) {
			assert.Equal(t, domain.ChargebackStatusLost, req.Outcome)
			assert.True(t, req.ImpactReserve)
			assert.True(t, req.ReserveDebitAmount.Equal(decimal.NewFromInt(5000)))
			return &domain.ChargebackRecord{ID: id, Status: domain.ChargebackStatusLost}, nil
		})

	w := doJSON(r, http.MethodPost, "/api/v1/chargebacks/"+id.String()+"/resolve", map[string]any{
		"outcome":              "LOST",
		"impact_reserve":       true,
		"reserve_debit_amount": "5000",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveChargeback_RejectsUnknownOutcome(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	w := doJSON(r, http.MethodPost, "/api/v1/chargebacks/"+uuid.New().String()+"/resolve", map[string]any{
		"outcome": "SETTLED",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitRepresentment_OK(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	id := uuid.New()
	m.chargebackSvc.EXPECT().SubmitRepresentment(gomock.Any(), id, gomock.Any(), "tracking shows delivery", "api").
		Return(&domain.ChargebackRecord{ID: id, Status: domain.ChargebackStatusRepresentment}, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/chargebacks/"+id.String()+"/representment", map[string]any{
		"evidence": map[string]any{"tracking_number": "1Z999"},
		"notes":    "tracking shows delivery",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListChargebacks_Filters(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	profileID := uuid.New()
	m.chargebackSvc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.ChargebackListParams) ([]domain.ChargebackRecord, int64, error) {
			require.NotNil(t, params.ProfileID)
			assert.Equal(t, profileID, *params.ProfileID)
			require.NotNil(t, params.Status)
			assert.Equal(t, domain.ChargebackStatusReceived, *params.Status)
			return nil, 0, nil
		})

	w := doJSON(r, http.MethodGet, "/api/v1/chargebacks?profile_id="+profileID.String()+"&status=RECEIVED", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetApproachingDeadline_DefaultDays(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	m.chargebackSvc.EXPECT().GetApproachingDeadline(gomock.Any(), 7).
		Return([]domain.ChargebackRecord{}, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/chargebacks/approaching-deadline", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// ==================== Settlement & Health ====================

func TestSettlementRun_OK(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	m.settlementSvc.EXPECT().ProcessDueReleases(gomock.Any()).Return(&ports.SettlementBatchResult{
		StartedAt:  time.Now().UTC(),
		FinishedAt: time.Now().UTC(),
		Released:   3,
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/settlements/run", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(3), data["released"])
}

func TestSettlementRun_LockContended(t *testing.T) {
	r, m := setupTestRouter(t)
	defer m.ctrl.Finish()

	m.settlementSvc.EXPECT().ProcessDueReleases(gomock.Any()).
		Return(nil, apperror.ErrSettlementRunning())

	w := doJSON(r, http.MethodPost, "/api/v1/admin/settlements/run", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "RES_004")
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                 { return s.name }
func (s stubChecker) Ping(_ context.Context) error { return s.err }

func TestHealthCheck_AllHealthy(t *testing.T) {
	r, m := setupTestRouter(t, stubChecker{name: "postgres"}, stubChecker{name: "redis"})
	defer m.ctrl.Finish()

	w := doJSON(r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	r, m := setupTestRouter(t,
		stubChecker{name: "postgres"},
		stubChecker{name: "redis", err: errors.New("connection refused")},
	)
	defer m.ctrl.Finish()

	w := doJSON(r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
