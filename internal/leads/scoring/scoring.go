// Package scoring qualifies leasing inquiries.
// It turns the four-question intake form into a 0-100 score, a priority tier
// and the availability window that decides which tour dates are offered.
package scoring

// Priority is the qualification tier of a lead.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AvailabilityWindow names the lookahead policy used to offer tour dates.
type AvailabilityWindow string

const (
	WindowThisWeek AvailabilityWindow = "this_week"
	WindowNextWeek AvailabilityWindow = "next_week"
	WindowTwoWeeks AvailabilityWindow = "two_weeks"
)

// Estimated value labels shown to the leasing team.
const (
	EstimatedValueHigh      = "High Value"
	EstimatedValueStandard  = "Standard"
	EstimatedValueExploring = "Exploring"
)

// Breakdown records the points awarded per question.
type Breakdown struct {
	BusinessType int `json:"businessType"`
	SpaceNeeded  int `json:"spaceNeeded"`
	Timeline     int `json:"timeline"`
	Budget       int `json:"budget"`
}

// Result is the qualification outcome for one questionnaire.
type Result struct {
	Score              int                `json:"score"`
	Priority           Priority           `json:"priority"`
	AvailabilityWindow AvailabilityWindow `json:"availabilityWindow"`
	EstimatedValue     string             `json:"estimatedValue"`
	Breakdown          Breakdown          `json:"breakdown"`
}

var defaultPolicy = DefaultPolicy()

// Compute scores a questionnaire with the default policy.
func Compute(q Questionnaire) Result {
	return defaultPolicy.Compute(q)
}

// Compute scores a questionnaire. It never fails: unknown tags fall back to
// the category default.
func (p Policy) Compute(q Questionnaire) Result {
	breakdown := Breakdown{
		BusinessType: p.businessScore(q.BusinessType),
		SpaceNeeded:  p.spaceScore(q.SpaceNeeded),
		Timeline:     p.timelineScore(q.Timeline),
		Budget:       p.budgetScore(q.Budget),
	}
	score := breakdown.BusinessType + breakdown.SpaceNeeded + breakdown.Timeline + breakdown.Budget

	result := p.Classify(score)
	result.Breakdown = breakdown
	return result
}

// Classify maps a score onto its tier. The first matching threshold wins.
func (p Policy) Classify(score int) Result {
	switch {
	case score >= p.HighThreshold:
		return Result{
			Score:              score,
			Priority:           PriorityHigh,
			AvailabilityWindow: WindowThisWeek,
			EstimatedValue:     EstimatedValueHigh,
		}
	case score >= p.MediumThreshold:
		return Result{
			Score:              score,
			Priority:           PriorityMedium,
			AvailabilityWindow: WindowNextWeek,
			EstimatedValue:     EstimatedValueStandard,
		}
	default:
		return Result{
			Score:              score,
			Priority:           PriorityLow,
			AvailabilityWindow: WindowTwoWeeks,
			EstimatedValue:     EstimatedValueExploring,
		}
	}
}

// IsValid reports whether w is one of the known windows.
func (w AvailabilityWindow) IsValid() bool {
	switch w {
	case WindowThisWeek, WindowNextWeek, WindowTwoWeeks:
		return true
	default:
		return false
	}
}
