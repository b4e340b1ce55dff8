package handler

import (
	"errors"
	"net/http"
	"time"

	"qrlink/internal/model"
	"qrlink/internal/service"

	"github.com/gin-gonic/gin"
)

// RedirectHandler handles identifier resolution
type RedirectHandler struct {
	linkService service.LinkServiceInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(linkService service.LinkServiceInterface) *RedirectHandler {
	return &RedirectHandler{linkService: linkService}
}

// Redirect handles GET /r/:identifier
// @Summary Resolve a short identifier
// @Description Records the scan and 302-redirects to the destination URL
// @Tags redirect
// @Param identifier path string true "Short identifier"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Router /r/{identifier} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	identifier := c.Param("identifier")

	meta := &model.ScanMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
		Referrer:  c.Request.Referer(),
		Country:   c.GetHeader("CF-IPCountry"),
		Timestamp: time.Now().UTC(),
	}

	destination, err := h.linkService.Resolve(c.Request.Context(), identifier, meta)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{
				"identifier": identifier,
			})
			return
		}
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	// 302 Redirect
	c.Redirect(http.StatusFound, destination)
}

// QR handles GET /r/:identifier/qr
// @Summary Render the QR image of an active link
// @Tags redirect
// @Produce png
// @Param identifier path string true "Short identifier"
// @Success 200 {file} byte
// @Failure 404 {object} ErrorResponse
// @Router /r/{identifier}/qr [get]
func (h *RedirectHandler) QR(c *gin.Context) {
	identifier := c.Param("identifier")

	png, err := h.linkService.RenderQR(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			fail(c, http.StatusNotFound, "Link not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
