package dto

type CheckpointResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	TypeLabel        string  `json:"type_label"`
	Location         string  `json:"location"`
	Description      string  `json:"description"`
	Terminal         string  `json:"terminal"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	Mandatory        bool    `json:"mandatory"`
	EstimatedMinutes int     `json:"estimated_minutes"`
}

type ListCheckpointsResponse struct {
	Language    string               `json:"language"`
	Checkpoints []CheckpointResponse `json:"checkpoints"`
}
