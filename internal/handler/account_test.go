package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"qrlink/internal/mocks"
	"qrlink/internal/model"
	"qrlink/internal/service"
)

func newTestAccountRouter(h *AccountHandler, accountID string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), asAccount(accountID))
	router.POST("/api/v1/auth/register", h.Register)
	router.POST("/api/v1/auth/login", h.Login)
	router.GET("/api/v1/auth/me", h.Me)
	router.POST("/api/v1/billing/webhook", h.PlanWebhook)
	return router
}

func TestAccountHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&model.AuthResponse{
			Token:   "token",
			Account: &model.AccountProfile{ID: "acc-1", Email: "a@example.com", Plan: model.PlanFree},
		}, nil)

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "password": "password123"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "acc-1")
	})

	t.Run("missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("taken email maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.ErrEmailTaken)

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "password": "password123"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("weak password maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.ErrWeakPassword)

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "password": "short"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&model.AuthResponse{
			Token:   "token",
			Account: &model.AccountProfile{ID: "acc-1"},
		}, nil)

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "password": "password123"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token")
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidCredentials)

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "password": "wrong"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAccountHandler_Me(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "acc-1")

		mockService.EXPECT().GetProfile(gomock.Any(), "acc-1").Return(&model.AccountProfile{
			ID:    "acc-1",
			Email: "a@example.com",
			Plan:  model.PlanPro,
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@example.com")
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAccountHandler_PlanWebhook(t *testing.T) {
	t.Run("plan change succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, "hook-secret"), "")

		mockService.EXPECT().ChangePlan(gomock.Any(), "a@example.com", model.PlanPro).
			Return(&model.AccountProfile{ID: "acc-1", Plan: model.PlanPro}, nil)

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "plan": "pro"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/billing/webhook", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Webhook-Secret", "hook-secret")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pro")
	})

	t.Run("business alias maps to enterprise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		mockService.EXPECT().ChangePlan(gomock.Any(), "a@example.com", model.PlanEnterprise).
			Return(&model.AccountProfile{ID: "acc-1", Plan: model.PlanEnterprise}, nil)

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "plan": "business"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/billing/webhook", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, "hook-secret"), "")

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "plan": "pro"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/billing/webhook", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Webhook-Secret", "wrong")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid webhook secret")
	})

	t.Run("missing secret is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, "hook-secret"), "")

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "plan": "pro"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/billing/webhook", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown plan maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		jsonBody, _ := json.Marshal(map[string]string{"email": "a@example.com", "plan": "platinum"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/billing/webhook", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown account maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestAccountRouter(NewAccountHandler(mockService, ""), "")

		mockService.EXPECT().ChangePlan(gomock.Any(), "missing@example.com", model.PlanPro).
			Return(nil, service.ErrAccountNotFound)

		jsonBody, _ := json.Marshal(map[string]string{"email": "missing@example.com", "plan": "pro"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/billing/webhook", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
