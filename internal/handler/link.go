package handler

import (
	"net/http"
	"strconv"

	"qrlink/internal/model"
	"qrlink/internal/service"
	"qrlink/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LinkHandler handles link lifecycle endpoints
type LinkHandler struct {
	linkService    service.LinkServiceInterface
	accountService service.AccountServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(
	linkService service.LinkServiceInterface,
	accountService service.AccountServiceInterface,
) *LinkHandler {
	return &LinkHandler{
		linkService:    linkService,
		accountService: accountService,
	}
}

// Create handles POST /api/v1/links
// @Summary Create a short link
// @Description Mints a short identifier and QR code for a destination URL
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 200 {object} Response{data=model.CreateLinkResponse}
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	owner := h.ownerContext(c)

	resp, err := h.linkService.Create(c.Request.Context(), &req, owner)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, resp)
}

// List handles GET /api/v1/links
// @Summary List owned links
// @Tags links
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} Response{data=model.LinkListResponse}
// @Router /api/v1/links [get]
func (h *LinkHandler) List(c *gin.Context) {
	ownerID, authed := middleware.AccountID(c)
	if !authed {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.linkService.List(c.Request.Context(), ownerID, page, pageSize)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, resp)
}

// Get handles GET /api/v1/links/:id
// @Summary Get one owned link
// @Tags links
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} Response{data=model.Link}
// @Router /api/v1/links/{id} [get]
func (h *LinkHandler) Get(c *gin.Context) {
	ownerID, linkID, ok2 := h.ownedLinkParams(c)
	if !ok2 {
		return
	}

	link, err := h.linkService.Get(c.Request.Context(), linkID, ownerID)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, link)
}

// Update handles PATCH /api/v1/links/:id
// @Summary Update an owned link
// @Tags links
// @Accept json
// @Produce json
// @Param id path int true "Link ID"
// @Param request body model.UpdateLinkRequest true "Update request"
// @Success 200 {object} Response{data=model.LinkSummary}
// @Router /api/v1/links/{id} [patch]
func (h *LinkHandler) Update(c *gin.Context) {
	ownerID, linkID, ok2 := h.ownedLinkParams(c)
	if !ok2 {
		return
	}

	var req model.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	summary, err := h.linkService.Update(c.Request.Context(), linkID, ownerID, &req)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, summary)
}

// Delete handles DELETE /api/v1/links/:id
// @Summary Delete an owned link
// @Tags links
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} Response
// @Router /api/v1/links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	ownerID, linkID, ok2 := h.ownedLinkParams(c)
	if !ok2 {
		return
	}

	if err := h.linkService.Delete(c.Request.Context(), linkID, ownerID); err != nil {
		failFromError(c, err)
		return
	}

	ok(c, nil)
}

// ownerContext loads the authenticated account, if any. Lookup failures
// degrade to anonymous rather than failing the request.
func (h *LinkHandler) ownerContext(c *gin.Context) *model.Account {
	accountID, authed := middleware.AccountID(c)
	if !authed {
		return nil
	}

	owner, err := h.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		log.Warn().Err(err).Str("account_id", accountID).Msg("Failed to load owner context")
		return nil
	}
	return owner
}

// ownedLinkParams extracts the owner and path link ID, writing the error
// response itself when either is missing
func (h *LinkHandler) ownedLinkParams(c *gin.Context) (string, int64, bool) {
	ownerID, authed := middleware.AccountID(c)
	if !authed {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return "", 0, false
	}

	linkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid link id")
		return "", 0, false
	}

	return ownerID, linkID, true
}
