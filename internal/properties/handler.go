package properties

import (
	"plaza_storefront_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the public catalog endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/v1/public/properties
func (h *Handler) List(c *gin.Context) {
	httpkit.OK(c, gin.H{"properties": h.svc.List()})
}

// Get handles GET /api/v1/public/properties/:slug
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, detail)
}

// Site handles GET /api/v1/public/site, resolving the plaza from the Host.
func (h *Handler) Site(c *gin.Context) {
	detail, err := h.svc.BySubdomain(httpkit.Subdomain(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, detail)
}
