package handler

import (
	"net/http"

	"plaza_storefront_backend/internal/leads/service"
	"plaza_storefront_backend/internal/leads/transport"
	"plaza_storefront_backend/platform/httpkit"
	"plaza_storefront_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes registers the wizard endpoints under /public/leads.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/qualify", h.Qualify)
	rg.GET("/slots", h.Slots)
	rg.POST("/inquiries", h.SubmitInquiry)
}

// RegisterAdminRoutes registers the lead inbox under /admin/leads.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/export.csv", h.ExportCSV)
}

// Qualify handles POST /api/v1/public/leads/qualify
func (h *Handler) Qualify(c *gin.Context) {
	var req transport.QualifyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	res, err := h.svc.Qualify(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, res)
}

// Slots handles GET /api/v1/public/leads/slots?window=
func (h *Handler) Slots(c *gin.Context) {
	var req transport.SlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	res, err := h.svc.Slots(c.Request.Context(), req.Window)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, res)
}

// SubmitInquiry handles POST /api/v1/public/leads/inquiries
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req transport.InquiryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	res, err := h.svc.SubmitInquiry(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, res)
}

// List handles GET /api/v1/admin/leads?property=&priority=&limit=
func (h *Handler) List(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	res, err := h.svc.ListLeads(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, res)
}

func (h *Handler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return false
	}
	return true
}
