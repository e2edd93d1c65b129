package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/dto"
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/middleware"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports/mocks"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testSession() *domain.Session {
	return &domain.Session{ID: uuid.New(), BackendToken: "backend-token", DisplayName: "Ada"}
}

// newAuthedContext builds a test context carrying a resolved session, the
// way SessionAuth leaves it for downstream handlers.
func newAuthedContext(t *testing.T, sess *domain.Session, req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middleware.CtxSession, sess)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Session Handler Tests ---

func TestSignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionService(ctrl)
	vendors := mocks.NewMockVendorService(ctrl)
	payments := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewSessionHandler(sessions, vendors, payments)

	sess := testSession()
	sessions.EXPECT().SignIn(gomock.Any(), "backend-token").Return(sess, "signed.jwt", nil)

	body, _ := json.Marshal(dto.SignInRequest{Token: "backend-token"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SignIn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt", data["session_token"])
	assert.Equal(t, "Ada", data["display_name"])
}

func TestSignIn_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSessionHandler(mocks.NewMockSessionService(ctrl), mocks.NewMockVendorService(ctrl), mocks.NewMockPaymentOrchestrator(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SignIn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignIn_BackendRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionService(ctrl)
	sessions.EXPECT().SignIn(gomock.Any(), "bad").Return(nil, "", apperror.Upstream("Invalid token"))
	h := NewSessionHandler(sessions, mocks.NewMockVendorService(ctrl), mocks.NewMockPaymentOrchestrator(ctrl))

	body, _ := json.Marshal(dto.SignInRequest{Token: "bad"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SignIn(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Invalid token", resp["error"])
}

func TestSignOut_TearsDownEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionService(ctrl)
	vendors := mocks.NewMockVendorService(ctrl)
	payments := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewSessionHandler(sessions, vendors, payments)

	sess := testSession()
	payments.EXPECT().Abandon(sess)
	vendors.EXPECT().Forget(sess.ID)
	sessions.EXPECT().SignOut(gomock.Any(), sess).Return(nil)

	c, w := newAuthedContext(t, sess, httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil))
	h.SignOut(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Vendor Handler Tests ---

func TestVendorList_RefreshesAndFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendors := mocks.NewMockVendorService(ctrl)
	h := NewVendorHandler(vendors)

	sess := testSession()
	listed := []domain.Vendor{{ID: "v_1", Name: "Acme Properties", Onboarded: true}}
	vendors.EXPECT().Refresh(gomock.Any(), sess).Return(listed, nil)
	vendors.EXPECT().Vendors(sess, true, "acme").Return(listed)

	c, w := newAuthedContext(t, sess, httptest.NewRequest(http.MethodGet, "/api/v1/vendors?payable=true&q=acme", nil))
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["vendors"], 1)
}

func TestVendorList_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendors := mocks.NewMockVendorService(ctrl)
	h := NewVendorHandler(vendors)

	sess := testSession()
	vendors.EXPECT().Refresh(gomock.Any(), sess).Return(nil, apperror.Network(errors.New("dial tcp: refused")))

	c, w := newAuthedContext(t, sess, httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil))
	h.List(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Network error", resp["error"])
}

func TestVendorCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendors := mocks.NewMockVendorService(ctrl)
	h := NewVendorHandler(vendors)

	sess := testSession()
	created := &domain.Vendor{ID: "v_new", Name: "City Clinic", Category: domain.VendorCategoryMedical}
	vendors.EXPECT().CreateVendor(gomock.Any(), sess, ports.CreateVendorRequest{
		Name:      "City Clinic",
		Email:     "billing@clinic.example",
		Category:  domain.VendorCategoryMedical,
		LegalForm: domain.LegalFormCompany,
	}).Return(created, "https://onboard.example/v_new", nil)

	body, _ := json.Marshal(dto.CreateVendorRequest{
		Name:         "City Clinic",
		Email:        "billing@clinic.example",
		Type:         "Medical",
		BusinessType: "company",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, sess, req)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "https://onboard.example/v_new", data["onboardingUrl"])
}

func TestVendorCreate_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewVendorHandler(mocks.NewMockVendorService(ctrl))

	body, _ := json.Marshal(dto.CreateVendorRequest{
		Name:         "Acme",
		Email:        "not-an-email",
		Type:         "Rent",
		BusinessType: "company",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, testSession(), req)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVendorDashboardURL_NotPayable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendors := mocks.NewMockVendorService(ctrl)
	h := NewVendorHandler(vendors)

	sess := testSession()
	vendors.EXPECT().OnboardingDashboardURL(gomock.Any(), sess, "v_pending").Return("", apperror.ErrVendorNotPayable())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/v_pending/dashboard", nil)
	c, w := newAuthedContext(t, sess, req)
	c.Params = gin.Params{{Key: "id", Value: "v_pending"}}
	h.DashboardURL(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Vendor has not completed onboarding", resp["error"])
}

func TestVendorDashboardURL_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendors := mocks.NewMockVendorService(ctrl)
	h := NewVendorHandler(vendors)

	sess := testSession()
	vendors.EXPECT().OnboardingDashboardURL(gomock.Any(), sess, "v_1").Return("https://dash.example/once", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/v_1/dashboard", nil)
	c, w := newAuthedContext(t, sess, req)
	c.Params = gin.Params{{Key: "id", Value: "v_1"}}
	h.DashboardURL(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "https://dash.example/once", data["url"])
}

func TestVendorRefresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendors := mocks.NewMockVendorService(ctrl)
	h := NewVendorHandler(vendors)

	sess := testSession()
	onboarded := &domain.Vendor{ID: "v_1", Name: "Acme", Onboarded: true}
	vendors.EXPECT().RefreshVendor(gomock.Any(), sess, "v_1").Return(onboarded, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/v_1/refresh", nil)
	c, w := newAuthedContext(t, sess, req)
	c.Params = gin.Params{{Key: "id", Value: "v_1"}}
	h.Refresh(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	vendor := data["vendor"].(map[string]interface{})
	assert.Equal(t, true, vendor["onboarded"])
}

// --- Payment Handler Tests ---

func TestQuote_ReturnsPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fees := mocks.NewMockFeeQuoter(ctrl)
	h := NewPaymentHandler(mocks.NewMockPaymentOrchestrator(ctrl), fees)

	fees.EXPECT().Quote("100", domain.PayoutSpeedInstant).Return(domain.FeeQuote{
		Amount: 10000, Fee: 450, Total: 10450, Rate: 0.045, Valid: true,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/payments/quote?amount=100&speed=instant", nil)
	h.Quote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(10450), data["total"])
	assert.Equal(t, true, data["valid"])
}

func TestCreateIntent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(payments, mocks.NewMockFeeQuoter(ctrl))

	sess := testSession()
	snap := &domain.FlowSnapshot{State: domain.FlowStateConfirming, VendorID: "v_1", VendorName: "Acme"}
	payments.EXPECT().CreateIntent(gomock.Any(), sess, ports.PaymentRequest{
		VendorID:    "v_1",
		Amount:      "120.50",
		Description: "October rent",
		PayoutSpeed: domain.PayoutSpeedStandard,
	}).Return(snap, nil)

	body, _ := json.Marshal(dto.PaymentIntentRequest{
		VendorID:    "v_1",
		Amount:      "120.50",
		Description: "October rent",
		PayoutSpeed: "standard",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/intent", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, sess, req)
	h.CreateIntent(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, string(domain.FlowStateConfirming), data["state"])
}

func TestCreateIntent_UnsafeVendorID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPaymentHandler(mocks.NewMockPaymentOrchestrator(ctrl), mocks.NewMockFeeQuoter(ctrl))

	body, _ := json.Marshal(dto.PaymentIntentRequest{
		VendorID: "v_1/../../etc",
		Amount:   "100",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/intent", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, testSession(), req)
	h.CreateIntent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIntent_InFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(payments, mocks.NewMockFeeQuoter(ctrl))

	sess := testSession()
	payments.EXPECT().CreateIntent(gomock.Any(), sess, gomock.Any()).Return(nil, apperror.ErrRequestInFlight())

	body, _ := json.Marshal(dto.PaymentIntentRequest{VendorID: "v_1", Amount: "100"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/intent", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, sess, req)
	h.CreateIntent(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirm_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(payments, mocks.NewMockFeeQuoter(ctrl))

	sess := testSession()
	card := domain.CardDetails{Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123"}
	payments.EXPECT().Confirm(gomock.Any(), sess, card).
		Return(&domain.FlowSnapshot{State: domain.FlowStateSucceeded}, nil)

	body, _ := json.Marshal(dto.ConfirmPaymentRequest{Card: dto.CardInput{
		Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123",
	}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, sess, req)
	h.Confirm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, string(domain.FlowStateSucceeded), data["state"])
}

func TestConfirm_CardDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(payments, mocks.NewMockFeeQuoter(ctrl))

	sess := testSession()
	payments.EXPECT().Confirm(gomock.Any(), sess, gomock.Any()).
		Return(nil, apperror.CardDeclined("Your card was declined"))

	body, _ := json.Marshal(dto.ConfirmPaymentRequest{Card: dto.CardInput{
		Number: "4000000000000002", ExpMonth: 12, ExpYear: 2030, CVC: "123",
	}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, sess, req)
	h.Confirm(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Your card was declined", resp["error"])
}

func TestConfirm_MissingCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewPaymentHandler(mocks.NewMockPaymentOrchestrator(ctrl), mocks.NewMockFeeQuoter(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, testSession(), req)
	h.Confirm(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlow_ReturnsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(payments, mocks.NewMockFeeQuoter(ctrl))

	sess := testSession()
	payments.EXPECT().Flow(sess).Return(&domain.FlowSnapshot{State: domain.FlowStateIdle})

	c, w := newAuthedContext(t, sess, httptest.NewRequest(http.MethodGet, "/api/v1/payments/flow", nil))
	h.Flow(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, string(domain.FlowStateIdle), data["state"])
}

func TestAbandon_DropsFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(payments, mocks.NewMockFeeQuoter(ctrl))

	sess := testSession()
	payments.EXPECT().Abandon(sess)
	payments.EXPECT().Flow(sess).Return(&domain.FlowSnapshot{State: domain.FlowStateIdle})

	c, w := newAuthedContext(t, sess, httptest.NewRequest(http.MethodDelete, "/api/v1/payments/flow", nil))
	h.Abandon(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Ledger Handler Tests ---

func TestLedgerList_ParsesParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(ledger)

	sess := testSession()
	status := domain.TransactionStatusCompleted
	ledger.EXPECT().ListTransactions(gomock.Any(), sess, ports.LedgerParams{
		Page:     2,
		PageSize: 25,
		Status:   &status,
		Query:    "acme",
	}).Return(&ports.LedgerPage{Page: 2, TotalPages: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?page=2&limit=25&status=Completed&q=acme", nil)
	c, w := newAuthedContext(t, sess, req)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLedgerList_DefaultsOnBadParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(ledger)

	sess := testSession()
	ledger.EXPECT().ListTransactions(gomock.Any(), sess, ports.LedgerParams{
		Page:     1,
		PageSize: 10,
	}).Return(&ports.LedgerPage{Page: 1, TotalPages: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?page=-4&limit=9999", nil)
	c, w := newAuthedContext(t, sess, req)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLedgerList_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(ledger)

	sess := testSession()
	ledger.EXPECT().ListTransactions(gomock.Any(), sess, gomock.Any()).
		Return(nil, apperror.Upstream("Service temporarily unavailable"))

	c, w := newAuthedContext(t, sess, httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil))
	h.List(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Service temporarily unavailable", resp["error"])
}

// --- Account Handler Tests ---

func TestStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(accounts)

	sess := testSession()
	accounts.EXPECT().DashboardStats(gomock.Any(), sess).Return(&domain.DashboardStats{
		TotalPayments:   125000,
		MonthlyPayments: 40000,
		ActiveVendors:   3,
	}, nil)

	c, w := newAuthedContext(t, sess, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	h.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(125000), stats["totalPayments"])
}

func TestUpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(accounts)

	sess := testSession()
	accounts.EXPECT().UpdateProfile(gomock.Any(), sess, "Grace").Return(nil)

	body, _ := json.Marshal(dto.UpdateProfileRequest{Name: "Grace"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, sess, req)
	h.UpdateProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateProfile_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAccountHandler(mocks.NewMockAccountService(ctrl))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/profile", bytes.NewReader([]byte(`{"name":""}`)))
	req.Header.Set("Content-Type", "application/json")
	c, w := newAuthedContext(t, testSession(), req)
	h.UpdateProfile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health Check Tests ---

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(ctx context.Context) error { return f.err }
func (f fakeChecker) Name() string                   { return f.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(fakeChecker{name: "redis"}, fakeChecker{name: "backend"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(
		fakeChecker{name: "redis"},
		fakeChecker{name: "backend", err: errors.New("connection refused")},
	)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	backend := deps["backend"].(map[string]interface{})
	assert.Equal(t, "unhealthy", backend["status"])
}

// --- Router Tests ---

func TestRouter_RejectsUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionService(ctrl)
	sessions.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidSession()).AnyTimes()

	r := SetupRouter(RouterDeps{
		SessionSvc: sessions,
		VendorSvc:  mocks.NewMockVendorService(ctrl),
		PaymentSvc: mocks.NewMockPaymentOrchestrator(ctrl),
		FeeSvc:     mocks.NewMockFeeQuoter(ctrl),
		LedgerSvc:  mocks.NewMockLedgerService(ctrl),
		AccountSvc: mocks.NewMockAccountService(ctrl),
	})

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/vendors"},
		{http.MethodPost, "/api/v1/payments/intent"},
		{http.MethodGet, "/api/v1/transactions"},
		{http.MethodGet, "/api/v1/stats"},
		{http.MethodDelete, "/api/v1/session"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionService(ctrl)
	sessions.EXPECT().SignIn(gomock.Any(), "tok").Return(testSession(), "signed.jwt", nil)

	r := SetupRouter(RouterDeps{
		SessionSvc: sessions,
		VendorSvc:  mocks.NewMockVendorService(ctrl),
		PaymentSvc: mocks.NewMockPaymentOrchestrator(ctrl),
		FeeSvc:     mocks.NewMockFeeQuoter(ctrl),
		LedgerSvc:  mocks.NewMockLedgerService(ctrl),
		AccountSvc: mocks.NewMockAccountService(ctrl),
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	body, _ := json.Marshal(dto.SignInRequest{Token: "tok"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
