package dto

import "time"

type CreateItineraryRequest struct {
	StartTime *time.Time `json:"start_time"`
}

type AddCheckpointsRequest struct {
	IDs []string `json:"ids"`
}

type SetStepRequest struct {
	Step int `json:"step"`
}

// StartTimeRequest carries exactly one of StartTime or ShiftMinutes.
type StartTimeRequest struct {
	StartTime    *time.Time `json:"start_time"`
	ShiftMinutes *int       `json:"shift_minutes"`
}

type TimelineEntryResponse struct {
	Checkpoint          CheckpointResponse `json:"checkpoint"`
	ArriveAt            time.Time          `json:"arrive_at"`
	DepartAt            time.Time          `json:"depart_at"`
	ArriveClock         string             `json:"arrive_clock"`
	DepartClock         string             `json:"depart_clock"`
	TravelMinutesToNext *int               `json:"travel_minutes_to_next"`
}

type BoardingResponse struct {
	Deadline      time.Time `json:"deadline"`
	JourneyEnd    time.Time `json:"journey_end"`
	MarginMinutes int       `json:"margin_minutes"`
	MarginLabel   string    `json:"margin_label"`
	Warning       bool      `json:"warning"`
}

type ItineraryResponse struct {
	ID           string                  `json:"id"`
	Selection    []string                `json:"selection"`
	Timeline     []TimelineEntryResponse `json:"timeline"`
	CurrentStep  int                     `json:"current_step"`
	Progress     float64                 `json:"progress"`
	StartTime    time.Time               `json:"start_time"`
	TotalMinutes int                     `json:"total_minutes"`
	TotalLabel   string                  `json:"total_label"`
	Boarding     BoardingResponse        `json:"boarding"`
}
