package analytics

import (
	"context"
	"net/http"
	"time"

	"plaza_storefront_backend/platform/httpkit"
	"plaza_storefront_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// TrackRequest is the body of POST /analytics/events.
type TrackRequest struct {
	Event        string `json:"event" validate:"required,oneof=tour_click phone_click inquiry_form_open inquiry_form_start inquiry_form_step inquiry_form_submit"`
	PropertySlug string `json:"propertySlug" validate:"required,max=64"`
	Step         int    `json:"step" validate:"omitempty,min=1,max=10"`
	Score        *int   `json:"score" validate:"omitempty,min=0,max=100"`
	Priority     string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// Handler exposes the funnel endpoints.
type Handler struct {
	svc        *Service
	properties PropertyLookup
	counts     CountReader
	val        *validator.Validator
}

// CountReader reads stored counters. Nil when Redis is not configured.
type CountReader interface {
	Counts(ctx context.Context, propertySlug string, day time.Time) (map[string]int64, error)
}

func NewHandler(svc *Service, properties PropertyLookup, counts CountReader, val *validator.Validator) *Handler {
	return &Handler{svc: svc, properties: properties, counts: counts, val: val}
}

// Track handles POST /api/v1/public/analytics/events
func (h *Handler) Track(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}
	if _, ok := h.properties.PropertyName(req.PropertySlug); !ok {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, map[string]string{"propertySlug": "unknown"})
		return
	}

	h.svc.Track(c.Request.Context(), Event{
		Name:         req.Event,
		PropertySlug: req.PropertySlug,
		Step:         req.Step,
		Score:        req.Score,
		Priority:     req.Priority,
	})
	httpkit.Accepted(c, gin.H{"accepted": true})
}

// Funnel handles GET /api/v1/admin/analytics/funnel?property=&date=YYYY-MM-DD
func (h *Handler) Funnel(c *gin.Context) {
	if h.counts == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "funnel storage not configured", nil)
		return
	}

	slug := c.Query("property")
	if _, ok := h.properties.PropertyName(slug); !ok {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, map[string]string{"property": "unknown"})
		return
	}

	day := h.svc.now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(dayLayout, raw, day.Location())
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, map[string]string{"date": "format YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	counts, err := h.counts.Counts(c.Request.Context(), slug, day)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"property": slug, "date": day.Format(dayLayout), "counts": counts})
}
