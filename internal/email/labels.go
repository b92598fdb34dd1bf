package email

var businessTypeLabels = map[string]string{
	"restaurant":   "Restaurant / Food Service",
	"medical":      "Medical / Dental",
	"professional": "Professional Services",
	"retail":       "Retail Store",
	"services":     "Personal Services",
	"other":        "Other / Not Sure",
}

var spaceLabels = map[string]string{
	"small":  "Under 2,000 SF",
	"medium": "2,000 - 5,000 SF",
	"large":  "5,000 - 10,000 SF",
	"xlarge": "10,000+ SF",
	"unsure": "Not sure yet",
}

var timelineLabels = map[string]string{
	"immediately":  "As soon as possible",
	"three_months": "Within 3 months",
	"six_months":   "Within 6 months",
	"exploring":    "Just exploring options",
}

var budgetLabels = map[string]string{
	"premium": "$10,000+ / month",
	"high":    "$6,000 - $10,000 / month",
	"medium":  "$4,000 - $6,000 / month",
	"low":     "Under $4,000 / month",
	"unsure":  "Not sure / Flexible",
}

// label falls back to the raw tag for values outside the table.
func label(table map[string]string, tag string) string {
	if l, ok := table[tag]; ok {
		return l
	}
	return tag
}

func priorityColor(priority string) string {
	switch priority {
	case "high":
		return "#059669"
	case "medium":
		return "#D97706"
	default:
		return "#6B7280"
	}
}
