package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"plaza_storefront_backend/internal/leads/transport"
	"plaza_storefront_backend/platform/httpkit"
	"plaza_storefront_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

var exportHeaders = []string{
	"Lead ID", "Created At", "Property", "Priority", "Score", "Name", "Phone", "Email",
	"Business Name", "Business Type", "Space Needed", "Timeline", "Budget",
	"Tour Date", "Tour Time", "Status", "Message",
}

// ExportCSV handles GET /api/v1/admin/leads/export.csv with the same filters as List.
func (h *Handler) ExportCSV(c *gin.Context) {
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

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=plaza-leads.csv")

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeaders); err != nil {
		_ = c.Error(err)
		return
	}
	for _, item := range res.Items {
		if err := writer.Write(exportRow(item)); err != nil {
			_ = c.Error(err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = c.Error(err)
	}
}

func exportRow(item transport.LeadListItem) []string {
	return []string{
		item.ID.String(),
		item.CreatedAt.UTC().Format(time.RFC3339),
		item.PropertyName,
		item.Priority,
		strconv.Itoa(item.Score),
		item.Name,
		item.Phone,
		item.Email,
		item.BusinessName,
		item.BusinessType,
		item.SpaceNeeded,
		item.Timeline,
		item.Budget,
		deref(item.ScheduledDate),
		deref(item.ScheduledTime),
		item.Status,
		item.Message,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
