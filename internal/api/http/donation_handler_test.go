package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rewear-backend/internal/config"
	"rewear-backend/internal/domain"
	"rewear-backend/internal/security"
)

func testRouter(donations *MockDonationService, lifecycle *MockLifecycleService) (http.Handler, security.TokenManager) {
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Storage.MaxFileSizeMB = 10
	tm := security.NewTokenManager("test-secret", 60)
	router := NewRouter(cfg, tm, Services{
		Donations:     donations,
		Lifecycle:     lifecycle,
		Notifications: new(MockNotificationService),
		Photos:        new(MockPhotoService),
	})
	return router, tm
}

func bearerFor(t *testing.T, tm security.TokenManager, userID int32) string {
	t.Helper()
	token, err := tm.GenerateAccessToken(userID, "user@example.com", nil)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestDonationEndpoints_Auth(t *testing.T) {
	router, _ := testRouter(new(MockDonationService), new(MockLifecycleService))

	t.Run("MissingTokenUnauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/donations", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadTokenUnauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/donations", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDonationHandler_Submit(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		donations := new(MockDonationService)
		router, tm := testRouter(donations, new(MockLifecycleService))
		donations.On("Submit", mock.Anything, int32(5), mock.Anything).
			Return(&domain.DonationRequest{ID: 10, DonorID: 5, Status: domain.DonationStatusPending}, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"org_id": 3, "item_name": "Winter jacket", "description": "Barely worn",
			"category": "Jacket", "condition": "EXCELLENT", "size": "M",
			"gender": "UNISEX", "photo_refs": []string{"abc.jpg"},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerFor(t, tm, 5))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.DonationRequest
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int32(10), got.ID)
	})

	t.Run("ValidationErrorMapsTo400", func(t *testing.T) {
		donations := new(MockDonationService)
		router, tm := testRouter(donations, new(MockLifecycleService))
		donations.On("Submit", mock.Anything, int32(5), mock.Anything).
			Return(nil, domain.NewValidationError("item_name", "must not be empty"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Authorization", bearerFor(t, tm, 5))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDonationHandler_Decide(t *testing.T) {
	newDecideReq := func(t *testing.T, tm security.TokenManager, decision, reason string) *http.Request {
		body, _ := json.Marshal(map[string]string{"decision": decision, "reason": reason})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orgs/3/donations/10/decision", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerFor(t, tm, 7))
		return req
	}

	t.Run("Accepted", func(t *testing.T) {
		lifecycle := new(MockLifecycleService)
		router, tm := testRouter(new(MockDonationService), lifecycle)
		lifecycle.On("Decide", mock.Anything, int32(10), int32(7), domain.DonationStatusAccepted, "").
			Return(&domain.DonationRequest{ID: 10, Status: domain.DonationStatusAccepted},
				&domain.InventoryItem{ID: 20, RequestID: 10}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newDecideReq(t, tm, "ACCEPTED", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got decisionResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.DonationStatusAccepted, got.Request.Status)
		assert.NotNil(t, got.Inventory)
	})

	t.Run("AlreadyHandledMapsTo409", func(t *testing.T) {
		lifecycle := new(MockLifecycleService)
		router, tm := testRouter(new(MockDonationService), lifecycle)
		lifecycle.On("Decide", mock.Anything, int32(10), int32(7), domain.DonationStatusAccepted, "").
			Return(nil, nil, domain.ErrAlreadyHandled)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newDecideReq(t, tm, "ACCEPTED", ""))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("UnauthorizedMapsTo403", func(t *testing.T) {
		lifecycle := new(MockLifecycleService)
		router, tm := testRouter(new(MockDonationService), lifecycle)
		lifecycle.On("Decide", mock.Anything, int32(10), int32(7), domain.DonationStatusDeclined, "stained").
			Return(nil, nil, domain.ErrUnauthorized)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newDecideReq(t, tm, "DECLINED", "stained"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("PersistenceErrorMapsTo500WithGenericBody", func(t *testing.T) {
		lifecycle := new(MockLifecycleService)
		router, tm := testRouter(new(MockDonationService), lifecycle)
		lifecycle.On("Decide", mock.Anything, int32(10), int32(7), domain.DonationStatusAccepted, "").
			Return(nil, nil, domain.NewPersistenceError("inventory insert", assert.AnError))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newDecideReq(t, tm, "ACCEPTED", ""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "inventory insert")
	})
}

func TestInventoryHandler_Distribute(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		lifecycle := new(MockLifecycleService)
		router, tm := testRouter(new(MockDonationService), lifecycle)
		lifecycle.On("Distribute", mock.Anything, int32(3), int32(20), int32(7), "winter shelter").
			Return(&domain.DistributionRecord{ID: 30, InventoryID: 20, CO2SavedKg: 20.0}, nil)

		body, _ := json.Marshal(map[string]string{"beneficiary_group": "winter shelter"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orgs/3/inventory/20/distribute", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerFor(t, tm, 7))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.DistributionRecord
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 20.0, got.CO2SavedKg)
	})

	t.Run("GoneItemMapsTo404", func(t *testing.T) {
		lifecycle := new(MockLifecycleService)
		router, tm := testRouter(new(MockDonationService), lifecycle)
		lifecycle.On("Distribute", mock.Anything, int32(3), int32(20), int32(7), "shelter").
			Return(nil, domain.ErrNotFound)

		body, _ := json.Marshal(map[string]string{"beneficiary_group": "shelter"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orgs/3/inventory/20/distribute", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerFor(t, tm, 7))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
