package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"plaza_storefront_backend/internal/leads/scheduling"
)

//go:embed templates/*.html
var templateFS embed.FS

const companyName = "Newman Properties LLC"

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
	Footer     string
}

type leadAlertEmailData struct {
	baseEmailData
	Lead          Lead
	PriorityColor string
	TourDate      string
	BusinessType  string
	SpaceNeeded   string
	Timeline      string
	Budget        string
	MessageLines  []string
}

type leadConfirmationEmailData struct {
	baseEmailData
	Lead     Lead
	HasTour  bool
	TourDate string
	Company  string
}

var templateFuncs = template.FuncMap{
	"upper": strings.ToUpper,
}

func renderLeadAlert(lead Lead) (string, error) {
	data := leadAlertEmailData{
		baseEmailData: baseEmailData{
			Title:      "New Leasing Inquiry",
			Heading:    "New Leasing Inquiry",
			Subheading: lead.PropertyName,
			Footer:     fmt.Sprintf("This inquiry was submitted via %s on %s.", lead.PropertyName, companyName),
		},
		Lead:          lead,
		PriorityColor: priorityColor(lead.Priority),
		BusinessType:  label(businessTypeLabels, lead.BusinessType),
		SpaceNeeded:   label(spaceLabels, lead.SpaceNeeded),
		Timeline:      label(timelineLabels, lead.Timeline),
		Budget:        label(budgetLabels, lead.Budget),
		MessageLines:  splitLines(lead.Message),
	}
	if lead.HasTour() {
		data.TourDate = scheduling.FormatLongDate(lead.ScheduledDate)
	}
	return renderEmailTemplate("lead_alert.html", data)
}

func renderLeadConfirmation(lead Lead) (string, error) {
	heading := "We Received Your Inquiry"
	if lead.HasTour() {
		heading = "Your Tour is Scheduled!"
	}
	data := leadConfirmationEmailData{
		baseEmailData: baseEmailData{
			Title:      heading,
			Heading:    heading,
			Subheading: lead.PropertyName,
			Footer:     fmt.Sprintf("This is an automated confirmation from %s.", companyName),
		},
		Lead:    lead,
		HasTour: lead.HasTour(),
		Company: companyName,
	}
	if data.HasTour {
		data.TourDate = scheduling.FormatLongDate(lead.ScheduledDate)
	}
	return renderEmailTemplate("lead_confirmation.html", data)
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").Funcs(templateFuncs).ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func splitLines(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
