package services

import (
	"fmt"
	"math"
	"terminal-itinerary-service/internal/domain"
	"time"
)

// GenerateTimeline realizes an ordered list of checkpoints as a walking schedule.
//
// The clock starts at startAt. Each stop after the first is reached after the
// walking time from the previous stop; the traveler then stays for the stop's
// dwell duration before leaving. The schedule is recomputed from scratch on
// every call.
func GenerateTimeline(ordered []domain.Checkpoint, startAt time.Time) []domain.TimelineEntry {
	if len(ordered) == 0 {
		return []domain.TimelineEntry{}
	}

	entries := make([]domain.TimelineEntry, 0, len(ordered))
	currentTime := startAt

	for i, cp := range ordered {
		if i > 0 {
			travel := TravelMinutes(ordered[i-1], cp)
			currentTime = currentTime.Add(time.Duration(travel) * time.Minute)
		}

		arriveAt := currentTime
		departAt := arriveAt.Add(time.Duration(cp.DwellMinutes()) * time.Minute)

		var toNext *int
		if i < len(ordered)-1 {
			toNext = domain.Minutes(TravelMinutes(cp, ordered[i+1]))
		}

		entries = append(entries, domain.TimelineEntry{
			Checkpoint:          cp,
			ArriveAt:            arriveAt,
			DepartAt:            departAt,
			TravelMinutesToNext: toNext,
		})

		currentTime = departAt
	}

	return entries
}

// TotalMinutes returns the journey length from first arrival to last departure,
// rounded to the nearest minute. An empty timeline takes no time.
func TotalMinutes(timeline []domain.TimelineEntry) int {
	if len(timeline) == 0 {
		return 0
	}
	span := timeline[len(timeline)-1].DepartAt.Sub(timeline[0].ArriveAt)
	return int(math.Round(span.Minutes()))
}

// FormatClock renders a time of day as zero-padded 24-hour HH:MM.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatDuration renders minutes as "45m", "1h 5m" or "2h".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}
