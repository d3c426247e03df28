package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"terminal-itinerary-service/internal/platform/obs"
	"terminal-itinerary-service/internal/ports"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultGeminiModel   = "gemini-flash-latest"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// GeminiProvider implements SuggestionProvider on the Gemini generateContent API.
//
// The model is asked for a JSON object holding a reply text and the ids of
// 1-3 recommended candidates. The provider is safe for concurrent use.
type GeminiProvider struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	model       string
	maxAttempts int
	backoff     time.Duration
	logger      zerolog.Logger
}

type GeminiOption func(*GeminiProvider)

// WithBaseURL points the provider at another endpoint, e.g. a test server.
func WithBaseURL(url string) GeminiOption {
	return func(g *GeminiProvider) { g.baseURL = strings.TrimRight(url, "/") }
}

func WithHTTPClient(c *http.Client) GeminiOption {
	return func(g *GeminiProvider) { g.session = c }
}

// WithRetry sets the attempt budget and the initial backoff.
func WithRetry(attempts int, backoff time.Duration) GeminiOption {
	return func(g *GeminiProvider) {
		g.maxAttempts = max(1, attempts)
		g.backoff = backoff
	}
}

func NewGeminiProvider(apiKey, model string, opts ...GeminiOption) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	provider := &GeminiProvider{
		session:     &http.Client{Timeout: 15 * time.Second},
		apiKey:      apiKey,
		baseURL:     DefaultGeminiBaseURL,
		model:       model,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
		logger:      obs.Component("gemini"),
	}
	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
	ThinkingConfig   thinkingConfig `json:"thinkingConfig"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// modelAnswer is the JSON document the model is instructed to return.
type modelAnswer struct {
	Response      string   `json:"response"`
	CheckpointIDs []string `json:"checkpointIds"`
}

var answerSchema = map[string]any{
	"type":     "OBJECT",
	"required": []string{"response", "checkpointIds"},
	"properties": map[string]any{
		"response": map[string]any{"type": "STRING"},
		"checkpointIds": map[string]any{
			"type":  "ARRAY",
			"items": map[string]any{"type": "STRING"},
		},
	},
}

func (g *GeminiProvider) Suggest(
	ctx context.Context,
	req ports.SuggestionRequest,
) (_ ports.SuggestionResult, err error) {
	defer obs.Time(ctx, "gemini.Suggest")(&err)

	if strings.TrimSpace(req.Query) == "" {
		return ports.SuggestionResult{}, errors.New("gemini suggest: query must be non-empty")
	}

	body := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: buildPrompt(req)}},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   answerSchema,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return ports.SuggestionResult{}, fmt.Errorf("marshal gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return ports.SuggestionResult{}, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return ports.SuggestionResult{}, fmt.Errorf("decode gemini response: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return ports.SuggestionResult{}, errors.New("gemini returned no candidates")
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return ports.SuggestionResult{}, errors.New("gemini returned an empty answer")
	}

	var answer modelAnswer
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return ports.SuggestionResult{}, fmt.Errorf("parse gemini answer: %w", err)
	}

	ids := answer.CheckpointIDs
	if ids == nil {
		ids = []string{}
	}

	return ports.SuggestionResult{
		Text:          answer.Response,
		CheckpointIDs: ids,
	}, nil
}
