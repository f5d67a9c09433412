package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshXitachi/winmicro-wallet/internal/jwt"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/services"
)

func TestUpdateSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		newSettings := models.DefaultSettings()
		newSettings.RatePercent = decimal.NewFromInt(3)
		newSettings.ChargeOnTransfers = false

		mockSvc := NewMockAdministrator(ctrl)
		mockSvc.EXPECT().
			UpdateSettings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, s models.CommissionSettings) error {
				assert.True(t, s.RatePercent.Equal(decimal.NewFromInt(3)))
				assert.True(t, s.ChargeOnDeposits)
				assert.False(t, s.ChargeOnTransfers)
				return nil
			})

		bodyBytes, _ := json.Marshal(models.UpdateSettingsRequest{Settings: newSettings})
		req := httptest.NewRequest(http.MethodPut, "/admin/settings", bytes.NewReader(bodyBytes))
		w := httptest.NewRecorder()

		NewUpdateSettingsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rate out of range", func(t *testing.T) {
		mockSvc := NewMockAdministrator(ctrl)
		mockSvc.EXPECT().
			UpdateSettings(gomock.Any(), gomock.Any()).
			Return(services.ErrInvalidRate)

		bodyBytes, _ := json.Marshal(models.UpdateSettingsRequest{})
		req := httptest.NewRequest(http.MethodPut, "/admin/settings", bytes.NewReader(bodyBytes))
		w := httptest.NewRecorder()

		NewUpdateSettingsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminWithdrawHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operatorID := uuid.New()
	claims := &jwt.Claims{UserID: operatorID, IsAdmin: true}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockAdministrator(ctrl)
		mockSvc.EXPECT().
			WithdrawCommission(gomock.Any(), operatorID, models.INR, gomock.Any(), "monthly sweep").
			Return(&models.TransactionDB{TransactionID: uuid.New()}, nil)

		bodyBytes, _ := json.Marshal(models.AdminWithdrawRequest{Amount: 100, Currency: "INR", Note: "monthly sweep"})
		req := httptest.NewRequest(http.MethodPost, "/admin/wallets/withdraw", bytes.NewReader(bodyBytes))
		w := httptest.NewRecorder()

		NewAdminWithdrawHandler(mockSvc, authedTokener(ctrl, claims)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("platform wallet cannot cover it", func(t *testing.T) {
		mockSvc := NewMockAdministrator(ctrl)
		mockSvc.EXPECT().
			WithdrawCommission(gomock.Any(), operatorID, models.INR, gomock.Any(), "").
			Return(nil, services.ErrPlatformInsufficient)

		bodyBytes, _ := json.Marshal(models.AdminWithdrawRequest{Amount: 1e9, Currency: "INR"})
		req := httptest.NewRequest(http.MethodPost, "/admin/wallets/withdraw", bytes.NewReader(bodyBytes))
		w := httptest.NewRecorder()

		NewAdminWithdrawHandler(mockSvc, authedTokener(ctrl, claims)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWithdrawalDecisionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txnID := uuid.New()

	router := func(svc Administrator) http.Handler {
		r := chi.NewRouter()
		r.Post("/admin/withdrawals/{transactionID}/approve", NewApproveWithdrawalHandler(svc))
		r.Post("/admin/withdrawals/{transactionID}/reject", NewRejectWithdrawalHandler(svc))
		return r
	}

	t.Run("approve", func(t *testing.T) {
		mockSvc := NewMockAdministrator(ctrl)
		mockSvc.EXPECT().
			ApproveWithdrawal(gomock.Any(), txnID, "NEFT-001").
			Return(&models.TransactionDB{TransactionID: txnID, Status: models.StatusCompleted}, nil)

		bodyBytes, _ := json.Marshal(WithdrawalDecisionRequest{Note: "NEFT-001"})
		req := httptest.NewRequest(http.MethodPost, "/admin/withdrawals/"+txnID.String()+"/approve", bytes.NewReader(bodyBytes))
		w := httptest.NewRecorder()

		router(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("approve a non-pending entry", func(t *testing.T) {
		mockSvc := NewMockAdministrator(ctrl)
		mockSvc.EXPECT().
			ApproveWithdrawal(gomock.Any(), txnID, "").
			Return(nil, services.ErrNotAWithdrawal)

		req := httptest.NewRequest(http.MethodPost, "/admin/withdrawals/"+txnID.String()+"/approve", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()

		router(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("reject refunds the user", func(t *testing.T) {
		mockSvc := NewMockAdministrator(ctrl)
		mockSvc.EXPECT().
			RejectWithdrawal(gomock.Any(), txnID, "name mismatch").
			Return(&models.TransactionDB{TransactionID: txnID, Status: models.StatusFailed}, nil)

		bodyBytes, _ := json.Marshal(WithdrawalDecisionRequest{Note: "name mismatch"})
		req := httptest.NewRequest(http.MethodPost, "/admin/withdrawals/"+txnID.String()+"/reject", bytes.NewReader(bodyBytes))
		w := httptest.NewRecorder()

		router(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown entry", func(t *testing.T) {
		mockSvc := NewMockAdministrator(ctrl)
		mockSvc.EXPECT().
			ApproveWithdrawal(gomock.Any(), txnID, "").
			Return(nil, services.ErrEntryNotFound)

		req := httptest.NewRequest(http.MethodPost, "/admin/withdrawals/"+txnID.String()+"/approve", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()

		router(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/withdrawals/nope/approve", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()

		router(NewMockAdministrator(ctrl)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPendingWithdrawalsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdministrator(ctrl)
	mockSvc.EXPECT().
		PendingWithdrawals(gomock.Any(), 10, 0).
		Return([]models.TransactionDB{{TransactionID: uuid.New(), Kind: models.KindWithdrawal, Status: models.StatusPending}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/withdrawals?limit=10", nil)
	w := httptest.NewRecorder()

	NewPendingWithdrawalsHandler(mockSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Transactions, 1)
}

func TestGetSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdministrator(ctrl)
	mockSvc.EXPECT().
		GetSettings(gomock.Any()).
		Return(models.DefaultSettings(), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	w := httptest.NewRecorder()

	NewGetSettingsHandler(mockSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Settings.RatePercent.Equal(decimal.NewFromInt(2)))
}
