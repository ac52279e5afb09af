package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"merchant-reserve-engine/config"
	httpHandler "merchant-reserve-engine/internal/adapter/http/handler"
	redisStorage "merchant-reserve-engine/internal/adapter/storage/redis"
	"merchant-reserve-engine/internal/core/domain"
	"merchant-reserve-engine/internal/core/ports"
	"merchant-reserve-engine/internal/service"
	"merchant-reserve-engine/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on in-memory storage: miniredis
// behind the run lock and event publisher, map-backed postgres repos, and the
// real HTTP layer, middleware, handlers and services end-to-end.

type testApp struct {
	server         *httptest.Server
	redis          *miniredis.Miniredis
	profileRepo    *inMemoryProfileRepo
	ledgerRepo     *inMemoryLedgerRepo
	chargebackRepo *inMemoryChargebackRepo
	assessmentRepo *inMemoryAssessmentRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	profileRepo := newInMemoryProfileRepo()
	ledgerRepo := newInMemoryLedgerRepo()
	chargebackRepo := newInMemoryChargebackRepo()
	assessmentRepo := newInMemoryAssessmentRepo()
	auditRepo := newInMemoryAuditRepo()
	transactor := newInMemoryTransactor()

	runLock := redisStorage.NewRunLock(rdb)
	events := redisStorage.NewEventPublisher(rdb)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	log := logger.New("debug", false)
	auditSvc := service.NewAuditService(auditRepo, log)
	reserveSvc := service.NewReserveService(profileRepo, ledgerRepo, transactor, auditSvc, events,
		config.ReserveConfig{DefaultPercentage: 0.10, DefaultHoldDays: 90, SummaryEntries: 10}, log)
	settlementSvc := service.NewSettlementService(ledgerRepo, reserveSvc, runLock, auditSvc,
		config.SettlementConfig{Interval: time.Minute, BatchSize: 100, LockTTL: time.Minute}, log)
	riskSvc := service.NewRiskService(profileRepo, assessmentRepo, transactor, auditSvc, events, log)
	chargebackSvc := service.NewChargebackService(chargebackRepo, profileRepo, reserveSvc, transactor, auditSvc, events, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ReserveSvc:     reserveSvc,
		SettlementSvc:  settlementSvc,
		RiskSvc:        riskSvc,
		ChargebackSvc:  chargebackSvc,
		HealthCheckers: []ports.HealthChecker{redisHealth},
		Logger:         log,
	})

	return &testApp{
		server:         httptest.NewServer(router),
		redis:          mr,
		profileRepo:    profileRepo,
		ledgerRepo:     ledgerRepo,
		chargebackRepo: chargebackRepo,
		assessmentRepo: assessmentRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) post(t *testing.T, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(a.server.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp, decodeEnvelope(t, resp)
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp, decodeEnvelope(t, resp)
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func amountField(t *testing.T, data map[string]any, key string) decimal.Decimal {
	t.Helper()
	s, ok := data[key].(string)
	require.True(t, ok, "field %s missing or not a string: %v", key, data[key])
	return decimal.RequireFromString(s)
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_HoldLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Onboard a merchant.
	resp, profile := app.post(t, "/api/v1/profiles", map[string]any{
		"merchant_name": "Corner Grocery",
		"mcc":           "5411",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	profileID := profile["id"].(string)

	// Withhold 10% of a 10000 transaction for 90 days.
	resp, hold := app.post(t, "/api/v1/profiles/"+profileID+"/reserve/holds", map[string]any{
		"source_transaction_id": "txn_1001",
		"source_amount":         "10000",
		"reserve_percentage":    "0.10",
		"hold_days":             90,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	holdID, err := uuid.Parse(hold["id"].(string))
	require.NoError(t, err)
	assert.True(t, amountField(t, hold, "amount").Equal(decimal.NewFromInt(1000)))

	// Summary reflects the funded hold.
	resp, summary := app.get(t, "/api/v1/profiles/"+profileID+"/reserve")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, amountField(t, summary, "balance").Equal(decimal.NewFromInt(1000)))
	assert.True(t, amountField(t, summary, "pending_amount").Equal(decimal.NewFromInt(1000)))

	// Rewind the schedule and run a settlement batch.
	app.ledgerRepo.backdate(holdID, time.Now().UTC().Add(-time.Hour))
	resp, batch := app.post(t, "/api/v1/admin/settlements/run", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), batch["released"])
	assert.Equal(t, float64(0), batch["failed"])

	// The hold is released and the ledger replays to the stored balance.
	resp, summary = app.get(t, "/api/v1/profiles/"+profileID+"/reserve")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, amountField(t, summary, "balance").IsZero())
	assert.True(t, amountField(t, summary, "released_total").Equal(decimal.NewFromInt(1000)))

	pid := uuid.MustParse(profileID)
	replayed := domain.ReplayBalance(app.ledgerRepo.all(pid))
	stored, err := app.profileRepo.GetByID(t.Context(), pid)
	require.NoError(t, err)
	assert.True(t, replayed.Equal(stored.ReserveBalance))
}

func TestIntegration_ChargebackLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, profile := app.post(t, "/api/v1/profiles", map[string]any{
		"merchant_name": "Corner Grocery",
		"mcc":           "5411",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	profileID := profile["id"].(string)

	// Fund the reserve with 1000.
	resp, _ = app.post(t, "/api/v1/profiles/"+profileID+"/reserve/holds", map[string]any{
		"source_transaction_id": "txn_2001",
		"source_amount":         "10000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Register the dispute.
	resp, cb := app.post(t, "/api/v1/chargebacks", map[string]any{
		"external_id": "CB-2024-0001",
		"profile_id":  profileID,
		"amount":      "600",
		"fee":         "50",
		"reason_code": "10.4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cbID := cb["id"].(string)
	assert.Equal(t, "RECEIVED", cb["status"])

	// The same external id is rejected.
	dupResp, err := http.Post(app.server.URL+"/api/v1/chargebacks", "application/json",
		bytes.NewReader(mustJSON(t, map[string]any{
			"external_id": "CB-2024-0001",
			"profile_id":  profileID,
			"amount":      "600",
			"reason_code": "10.4",
		})))
	require.NoError(t, err)
	dupResp.Body.Close()
	assert.Equal(t, http.StatusConflict, dupResp.StatusCode)

	// Fight it, lose it, debit the reserve.
	resp, cb = app.post(t, "/api/v1/chargebacks/"+cbID+"/representment", map[string]any{
		"evidence": map[string]any{"tracking_number": "1Z999"},
		"notes":    "proof of delivery attached",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "REPRESENTMENT", cb["status"])

	resp, cb = app.post(t, "/api/v1/chargebacks/"+cbID+"/resolve", map[string]any{
		"outcome":              "LOST",
		"impact_reserve":       true,
		"reserve_debit_amount": "600",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "LOST", cb["status"])
	assert.True(t, amountField(t, cb, "reserve_debit_amount").Equal(decimal.NewFromInt(600)))
	assert.True(t, amountField(t, cb, "remaining_unfunded").IsZero())

	resp, summary := app.get(t, "/api/v1/profiles/"+profileID+"/reserve")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, amountField(t, summary, "balance").Equal(decimal.NewFromInt(400)))
	assert.True(t, amountField(t, summary, "debited_total").Equal(decimal.NewFromInt(600)))

	resp, stats := app.get(t, "/api/v1/profiles/"+profileID+"/chargebacks/stats")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), stats["lost"])
	assert.Equal(t, float64(1), stats["total"])
}

func TestIntegration_RiskEscalationNeedsApproval(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// A merchant in a high-risk category with no history scores VERY_HIGH,
	// so the onboarding assessment must not change the posture by itself.
	resp, profile := app.post(t, "/api/v1/profiles", map[string]any{
		"merchant_name": "Lucky Sevens",
		"mcc":           "7995",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	profileID := uuid.MustParse(profile["id"].(string))
	assert.Equal(t, "STANDARD", profile["risk_level"])

	assessments, err := app.assessmentRepo.ListByProfile(t.Context(), profileID, 10)
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	onboarding := assessments[0]
	assert.True(t, onboarding.RequiresApproval)
	assert.Equal(t, domain.RiskLevelVeryHigh, onboarding.NewLevel)

	// Sign it off; the posture applies.
	resp, _ = app.post(t, "/api/v1/assessments/"+onboarding.ID.String()+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, profile = app.get(t, "/api/v1/profiles/"+profileID.String())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "VERY_HIGH", profile["risk_level"])
	assert.Equal(t, float64(100), profile["risk_score"])

	// A second approval of the same assessment is rejected.
	secondResp, err := http.Post(app.server.URL+"/api/v1/assessments/"+onboarding.ID.String()+"/approve", "application/json", nil)
	require.NoError(t, err)
	secondResp.Body.Close()
	assert.Equal(t, http.StatusConflict, secondResp.StatusCode)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
