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
	"github.com/stretchr/testify/require"

	"qrlink/internal/mocks"
	"qrlink/internal/model"
	"qrlink/internal/service"
	"qrlink/pkg/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asAccount simulates an authenticated request the way the auth
// middleware would
func asAccount(accountID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accountID != "" {
			c.Set(middleware.AccountIDKey, accountID)
		}
		c.Next()
	}
}

func newTestLinkRouter(h *LinkHandler, accountID string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), asAccount(accountID))
	router.POST("/api/v1/links", h.Create)
	router.GET("/api/v1/links", h.List)
	router.GET("/api/v1/links/:id", h.Get)
	router.PATCH("/api/v1/links/:id", h.Update)
	router.DELETE("/api/v1/links/:id", h.Delete)
	return router
}

func TestNewLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
	mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)

	handler := NewLinkHandler(mockLinkService, mockAccountService)

	assert.NotNil(t, handler)
}

func TestLinkHandler_Create(t *testing.T) {
	t.Run("invalid JSON body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer([]byte("{invalid json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Contains(t, resp.Message, "Invalid request")
	})

	t.Run("missing destination URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "")

		jsonBody, _ := json.Marshal(map[string]string{"title": "no url"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous create succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "")

		mockLinkService.EXPECT().Create(gomock.Any(), gomock.Any(), nil).Return(&model.CreateLinkResponse{
			Identifier:     "aB3dE5fG",
			DestinationURL: "https://example.com",
			ShortURL:       "https://ql.example.com/r/aB3dE5fG",
			QRImage:        "data:image/png;base64,abc",
		}, nil)

		jsonBody, _ := json.Marshal(map[string]string{"destination_url": "https://example.com"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "success", resp.Message)
	})

	t.Run("authenticated create loads the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		owner := &model.Account{ID: "acc-1", Email: "a@example.com"}
		owner.ApplyPlan(model.PlanPro)

		mockAccountService.EXPECT().GetAccount(gomock.Any(), "acc-1").Return(owner, nil)
		mockLinkService.EXPECT().Create(gomock.Any(), gomock.Any(), owner).Return(&model.CreateLinkResponse{
			Identifier: "aB3dE5fG",
		}, nil)

		jsonBody, _ := json.Marshal(map[string]string{"destination_url": "https://example.com"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("quota exceeded maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "")

		mockLinkService.EXPECT().Create(gomock.Any(), gomock.Any(), nil).
			Return(nil, &service.QuotaExceededError{Plan: model.PlanFree, Limit: 5})

		jsonBody, _ := json.Marshal(map[string]string{"destination_url": "https://example.com"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid URL maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "")

		mockLinkService.EXPECT().Create(gomock.Any(), gomock.Any(), nil).Return(nil, service.ErrInvalidURL)

		jsonBody, _ := json.Marshal(map[string]string{"destination_url": "not-a-url"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "")

		mockLinkService.EXPECT().Create(gomock.Any(), gomock.Any(), nil).Return(nil, assert.AnError)

		jsonBody, _ := json.Marshal(map[string]string{"destination_url": "https://example.com"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLinkHandler_List(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("passes pagination through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		mockLinkService.EXPECT().List(gomock.Any(), "acc-1", 2, 10).Return(&model.LinkListResponse{
			Links:      []model.LinkSummary{{Identifier: "aB3dE5fG"}},
			Pagination: model.Pagination{Page: 2, PageSize: 10, Total: 11},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links?page=2&page_size=10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "aB3dE5fG")
	})

	t.Run("defaults pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		mockLinkService.EXPECT().List(gomock.Any(), "acc-1", 1, 20).Return(&model.LinkListResponse{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLinkHandler_Get(t *testing.T) {
	t.Run("owned link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		mockLinkService.EXPECT().Get(gomock.Any(), int64(7), "acc-1").Return(&model.Link{
			ID:         7,
			Identifier: "aB3dE5fG",
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "aB3dE5fG")
	})

	t.Run("invalid link id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("foreign link maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		mockLinkService.EXPECT().Get(gomock.Any(), int64(7), "acc-1").Return(nil, service.ErrLinkNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLinkHandler_Update(t *testing.T) {
	t.Run("updates title and active flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		mockLinkService.EXPECT().Update(gomock.Any(), int64(7), "acc-1", gomock.Any()).
			Return(&model.LinkSummary{ID: 7, Title: "Renamed"}, nil)

		jsonBody, _ := json.Marshal(map[string]interface{}{"title": "Renamed", "is_active": false})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/links/7", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Renamed")
	})

	t.Run("requires authentication", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "")

		jsonBody, _ := json.Marshal(map[string]string{"title": "Renamed"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/links/7", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLinkHandler_Delete(t *testing.T) {
	t.Run("owned link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		mockLinkService.EXPECT().Delete(gomock.Any(), int64(7), "acc-1").Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/links/7", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing link maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
		mockAccountService := mocks.NewMockAccountServiceInterface(ctrl)
		router := newTestLinkRouter(NewLinkHandler(mockLinkService, mockAccountService), "acc-1")

		mockLinkService.EXPECT().Delete(gomock.Any(), int64(99), "acc-1").Return(service.ErrLinkNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/links/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
