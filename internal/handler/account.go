package handler

import (
	"crypto/subtle"
	"net/http"

	"qrlink/internal/model"
	"qrlink/internal/service"
	"qrlink/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles registration, login and billing endpoints
type AccountHandler struct {
	accountService service.AccountServiceInterface
	webhookSecret  string
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService service.AccountServiceInterface, webhookSecret string) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		webhookSecret:  webhookSecret,
	}
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Registration"
// @Success 200 {object} Response{data=model.AuthResponse}
// @Router /api/v1/auth/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.accountService.Register(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, resp)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} Response{data=model.AuthResponse}
// @Router /api/v1/auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.accountService.Login(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, resp)
}

// Me handles GET /api/v1/auth/me
// @Summary Current account profile with usage and limits
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=model.AccountProfile}
// @Router /api/v1/auth/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	accountID, authed := middleware.AccountID(c)
	if !authed {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.accountService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, profile)
}

// PlanWebhook handles POST /api/v1/billing/webhook
// @Summary Billing-driven plan change
// @Description Recomputes the account limits from the new plan
// @Tags billing
// @Accept json
// @Produce json
// @Param request body model.PlanChangeRequest true "Plan change"
// @Success 200 {object} Response{data=model.AccountProfile}
// @Router /api/v1/billing/webhook [post]
func (h *AccountHandler) PlanWebhook(c *gin.Context) {
	if h.webhookSecret != "" {
		provided := c.GetHeader("X-Webhook-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.webhookSecret)) != 1 {
			fail(c, http.StatusUnauthorized, "Invalid webhook secret")
			return
		}
	}

	var req model.PlanChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	plan, err := model.ParsePlan(req.Plan)
	if err != nil {
		failFromError(c, err)
		return
	}

	profile, err := h.accountService.ChangePlan(c.Request.Context(), req.Email, plan)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, profile)
}
