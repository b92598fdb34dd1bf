package scoring

import (
	"fmt"
)

const (
	// DefaultHighThreshold is the lowest score that earns a high priority.
	DefaultHighThreshold = 70
	// DefaultMediumThreshold is the lowest score that earns a medium priority.
	DefaultMediumThreshold = 45

	maxScore = 100
)

// Policy holds the point tables and tier thresholds used by Compute.
// Each category falls back to its default for tags missing from its table.
type Policy struct {
	BusinessPoints  map[BusinessType]int
	BusinessDefault int

	SpacePoints  map[SpaceNeeded]int
	SpaceDefault int

	TimelinePoints  map[Timeline]int
	TimelineDefault int

	BudgetPoints  map[Budget]int
	BudgetDefault int

	HighThreshold   int
	MediumThreshold int
}

// DefaultPolicy returns the production scoring tables.
func DefaultPolicy() Policy {
	return Policy{
		// 0-25 pts
		BusinessPoints: map[BusinessType]int{
			BusinessRestaurant:   25,
			BusinessMedical:      25,
			BusinessProfessional: 20,
			BusinessRetail:       15,
			BusinessServices:     10,
			BusinessOther:        10,
		},
		BusinessDefault: 10,

		// 0-35 pts
		SpacePoints: map[SpaceNeeded]int{
			SpaceXLarge: 35,
			SpaceLarge:  25,
			SpaceMedium: 15,
			SpaceSmall:  5,
			SpaceUnsure: 15,
		},
		SpaceDefault: 15,

		// 0-25 pts
		TimelinePoints: map[Timeline]int{
			TimelineImmediately: 25,
			TimelineThreeMonths: 15,
			TimelineSixMonths:   8,
			TimelineExploring:   2,
		},
		TimelineDefault: 5,

		// 0-15 pts
		BudgetPoints: map[Budget]int{
			BudgetPremium: 15,
			BudgetHigh:    10,
			BudgetMedium:  5,
			BudgetLow:     0,
			BudgetUnsure:  5,
		},
		BudgetDefault: 5,

		HighThreshold:   DefaultHighThreshold,
		MediumThreshold: DefaultMediumThreshold,
	}
}

// WithThresholds returns a copy of the policy with different tier cut-offs.
func (p Policy) WithThresholds(high, medium int) Policy {
	p.HighThreshold = high
	p.MediumThreshold = medium
	return p
}

// Validate checks that the policy keeps scores inside 0..100 and that the
// tiers partition that range.
func (p Policy) Validate() error {
	if p.MediumThreshold < 0 || p.HighThreshold > maxScore {
		return fmt.Errorf("scoring thresholds must be within 0..%d", maxScore)
	}
	if p.MediumThreshold > p.HighThreshold {
		return fmt.Errorf("medium threshold %d is above high threshold %d", p.MediumThreshold, p.HighThreshold)
	}

	ceiling := maxPoints(p.BusinessPoints, p.BusinessDefault) +
		maxPoints(p.SpacePoints, p.SpaceDefault) +
		maxPoints(p.TimelinePoints, p.TimelineDefault) +
		maxPoints(p.BudgetPoints, p.BudgetDefault)
	if ceiling > maxScore {
		return fmt.Errorf("scoring tables allow %d points, above %d", ceiling, maxScore)
	}
	if minPoints(p.BusinessPoints, p.BusinessDefault) < 0 ||
		minPoints(p.SpacePoints, p.SpaceDefault) < 0 ||
		minPoints(p.TimelinePoints, p.TimelineDefault) < 0 ||
		minPoints(p.BudgetPoints, p.BudgetDefault) < 0 {
		return fmt.Errorf("scoring tables must not contain negative points")
	}
	return nil
}

func (p Policy) businessScore(tag BusinessType) int {
	if points, ok := p.BusinessPoints[tag]; ok {
		return points
	}
	return p.BusinessDefault
}

func (p Policy) spaceScore(tag SpaceNeeded) int {
	if points, ok := p.SpacePoints[tag]; ok {
		return points
	}
	return p.SpaceDefault
}

func (p Policy) timelineScore(tag Timeline) int {
	if points, ok := p.TimelinePoints[tag]; ok {
		return points
	}
	return p.TimelineDefault
}

func (p Policy) budgetScore(tag Budget) int {
	if points, ok := p.BudgetPoints[tag]; ok {
		return points
	}
	return p.BudgetDefault
}

func maxPoints[K comparable](table map[K]int, fallback int) int {
	best := fallback
	for _, v := range table {
		best = max(best, v)
	}
	return best
}

func minPoints[K comparable](table map[K]int, fallback int) int {
	lowest := fallback
	for _, v := range table {
		lowest = min(lowest, v)
	}
	return lowest
}
