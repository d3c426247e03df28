package services

import (
	"math"
	"terminal-itinerary-service/internal/domain"
	"time"
)

// DefaultBoardingLead is how far after session start boarding is assumed to begin.
const DefaultBoardingLead = 120 * time.Minute

// BoardingStatus compares the end of a journey with the boarding deadline.
// MarginMinutes is negative when the journey overruns boarding.
type BoardingStatus struct {
	Deadline      time.Time
	JourneyEnd    time.Time
	MarginMinutes int
	Warning       bool
}

// Label renders the absolute margin with FormatDuration.
func (b BoardingStatus) Label() string {
	m := b.MarginMinutes
	if m < 0 {
		m = -m
	}
	return FormatDuration(m)
}

// CheckBoarding derives the boarding margin from a timeline.
// The journey ends at the last departure, or at fallbackEnd for an empty timeline.
func CheckBoarding(deadline time.Time, timeline []domain.TimelineEntry, fallbackEnd time.Time) BoardingStatus {
	end := fallbackEnd
	if len(timeline) > 0 {
		end = timeline[len(timeline)-1].DepartAt
	}

	// Halves round toward +inf.
	margin := int(math.Floor(deadline.Sub(end).Minutes() + 0.5))

	return BoardingStatus{
		Deadline:      deadline,
		JourneyEnd:    end,
		MarginMinutes: margin,
		Warning:       margin < 0,
	}
}

// Progress returns the completed share of a journey as a percentage.
func Progress(step, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(step) / float64(total) * 100
}
