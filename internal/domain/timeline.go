package domain

import "time"

// Represents a single stop in a walking itinerary.
// A TimelineEntry is a checkpoint realized at concrete times: the traveler
// arrives at ArriveAt, stays for the dwell duration and leaves at DepartAt.
// TravelMinutesToNext is nil for the final stop.
type TimelineEntry struct {
	Checkpoint
	ArriveAt            time.Time
	DepartAt            time.Time
	TravelMinutesToNext *int
}

// Represents the persisted state of one itinerary session.
// Selection is always in optimized order; CurrentStep is 1-based.
type ItineraryState struct {
	Selection        []string  `json:"selection"`
	CurrentStep      int       `json:"current_step"`
	StartTime        time.Time `json:"start_time"`
	BoardingDeadline time.Time `json:"boarding_deadline"`
}
