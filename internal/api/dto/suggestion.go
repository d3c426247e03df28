package dto

type SuggestionRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type SuggestionResponse struct {
	Text              string               `json:"text"`
	Checkpoints       []CheckpointResponse `json:"checkpoints"`
	Source            string               `json:"source"`
	NeedsConfirmation bool                 `json:"needs_confirmation"`
}
