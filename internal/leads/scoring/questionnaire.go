package scoring

import "strings"

// BusinessType is the prospect's line of business.
type BusinessType string

const (
	BusinessRestaurant   BusinessType = "restaurant"
	BusinessMedical      BusinessType = "medical"
	BusinessProfessional BusinessType = "professional"
	BusinessRetail       BusinessType = "retail"
	BusinessServices     BusinessType = "services"
	BusinessOther        BusinessType = "other"
)

// SpaceNeeded is the leased footprint bracket the prospect asked for.
type SpaceNeeded string

const (
	SpaceSmall  SpaceNeeded = "small"  // under 2,000 SF
	SpaceMedium SpaceNeeded = "medium" // 2,000 - 5,000 SF
	SpaceLarge  SpaceNeeded = "large"  // 5,000 - 10,000 SF
	SpaceXLarge SpaceNeeded = "xlarge" // 10,000+ SF
	SpaceUnsure SpaceNeeded = "unsure"
)

// Timeline is how soon the prospect intends to move in.
type Timeline string

const (
	TimelineImmediately Timeline = "immediately"
	TimelineThreeMonths Timeline = "three_months"
	TimelineSixMonths   Timeline = "six_months"
	TimelineExploring   Timeline = "exploring"
)

// Budget is the monthly rent bracket.
type Budget string

const (
	BudgetPremium Budget = "premium" // $10k+/mo
	BudgetHigh    Budget = "high"    // $6k-10k/mo
	BudgetMedium  Budget = "medium"  // $4k-6k/mo
	BudgetLow     Budget = "low"     // under $4k/mo
	BudgetUnsure  Budget = "unsure"
)

// Known tag sets, in questionnaire display order.
var (
	AllBusinessTypes = []BusinessType{BusinessRestaurant, BusinessMedical, BusinessProfessional, BusinessRetail, BusinessServices, BusinessOther}
	AllSpaceNeeded   = []SpaceNeeded{SpaceSmall, SpaceMedium, SpaceLarge, SpaceXLarge, SpaceUnsure}
	AllTimelines     = []Timeline{TimelineImmediately, TimelineThreeMonths, TimelineSixMonths, TimelineExploring}
	AllBudgets       = []Budget{BudgetPremium, BudgetHigh, BudgetMedium, BudgetLow, BudgetUnsure}
)

// Questionnaire is one set of answers from the inquiry wizard.
// Values outside the known tag sets are allowed; they score the category default.
type Questionnaire struct {
	BusinessType BusinessType
	SpaceNeeded  SpaceNeeded
	Timeline     Timeline
	Budget       Budget
}

// NewQuestionnaire builds a questionnaire from raw form values.
// Tags are trimmed and lower-cased but never rejected.
func NewQuestionnaire(businessType, spaceNeeded, timeline, budget string) Questionnaire {
	return Questionnaire{
		BusinessType: BusinessType(normalizeTag(businessType)),
		SpaceNeeded:  SpaceNeeded(normalizeTag(spaceNeeded)),
		Timeline:     Timeline(normalizeTag(timeline)),
		Budget:       Budget(normalizeTag(budget)),
	}
}

func normalizeTag(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
