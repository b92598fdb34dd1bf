package properties

import (
	"math"
	"net/url"
	"slices"
	"strings"
	"unicode"
)

// Stats aggregates tenant reviews for a plaza.
type Stats struct {
	AvgRating     float64 `json:"avgRating"`
	TotalReviews  int     `json:"totalReviews"`
	BusinessCount int     `json:"businessCount"`
	TopRated      *Tenant `json:"topRated"`
	MostReviewed  *Tenant `json:"mostReviewed"`
}

// CategoryCount is one normalized business category.
type CategoryCount struct {
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Count    int    `json:"count"`
}

const (
	categoryDining        = "Dining & Grocery"
	categoryHealth        = "Health & Beauty"
	categoryFitness       = "Fitness & Recreation"
	categoryRetail        = "Retail & Shopping"
	categoryServices      = "Services"
	categoryHome          = "Home & Garden"
	categoryEntertainment = "Arts & Entertainment"
	categoryKids          = "Kids & Family"
	categoryOther         = "Other"
)

// Checked in order; the first group with a matching keyword wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{categoryDining, []string{"food", "drink", "breakfast", "japanese", "mediterranean", "mexican", "grocery"}},
	{categoryHealth, []string{"health", "beauty", "salon", "nail", "wellness", "dental"}},
	{categoryFitness, []string{"fitness", "sports", "recreation"}},
	{categoryRetail, []string{"retail", "shopping"}},
	{categoryServices, []string{"service", "technology", "education"}},
	{categoryHome, []string{"home", "improvement"}},
	{categoryEntertainment, []string{"entertainment", "arts"}},
	{categoryKids, []string{"kids", "family"}},
}

var categoryIcons = map[string]string{
	categoryDining:        "🍽️",
	categoryHealth:        "💇",
	categoryFitness:       "💪",
	categoryRetail:        "🛍️",
	categoryServices:      "💼",
	categoryHome:          "🏠",
	categoryEntertainment: "🎭",
	categoryKids:          "👶",
	categoryOther:         "🏪",
}

// CalculateStats averages ratings over rated tenants only (rounded to one
// decimal) and sums reviews over tenants that report them. Ties for top
// rated and most reviewed go to the earlier tenant.
func CalculateStats(tenants []Tenant) Stats {
	stats := Stats{BusinessCount: len(tenants)}

	var ratingSum float64
	rated := 0
	for i := range tenants {
		t := &tenants[i]
		if t.Rating != nil {
			ratingSum += *t.Rating
			rated++
			if stats.TopRated == nil || *t.Rating > *stats.TopRated.Rating {
				stats.TopRated = t
			}
		}
		if t.Reviews != nil {
			stats.TotalReviews += *t.Reviews
			if stats.MostReviewed == nil || *t.Reviews > *stats.MostReviewed.Reviews {
				stats.MostReviewed = t
			}
		}
	}
	if rated > 0 {
		stats.AvgRating = math.Round(ratingSum/float64(rated)*10) / 10
	}
	return stats
}

// BusinessCategories groups tenants into normalized categories sorted by
// count, largest first. Equal counts keep first-seen order.
func BusinessCategories(tenants []Tenant) []CategoryCount {
	counts := make(map[string]int)
	var order []string
	for _, t := range tenants {
		category := NormalizeCategory(t.Category)
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, category := range order {
		out = append(out, CategoryCount{
			Category: category,
			Icon:     categoryIcons[category],
			Count:    counts[category],
		})
	}
	slices.SortStableFunc(out, func(a, b CategoryCount) int {
		return b.Count - a.Count
	})
	return out
}

// NormalizeCategory maps a raw tenant category such as "🍳 Breakfast" onto
// one of the fixed storefront groups.
func NormalizeCategory(raw string) string {
	name := strings.ToLower(categoryName(raw))
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.category
			}
		}
	}
	return categoryOther
}

// categoryName drops a leading icon (any run of non-letter, non-digit runes).
func categoryName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	idx := strings.IndexFunc(trimmed, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(trimmed[idx:])
}

// TenantMapURL builds a Google Maps search link for a tenant at the plaza.
func TenantMapURL(t Tenant, p Property) string {
	query := strings.Join([]string{t.Name, p.Address, p.City, p.State}, " ")
	return "https://www.google.com/maps/search/" + encodeURIComponent(query)
}

// PropertyMapURL links to the plaza itself.
func PropertyMapURL(p Property) string {
	return "https://www.google.com/maps/place/" + p.MapQuery
}

var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes like the browser function of the same name,
// so links match the ones the storefront generates.
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
