package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/ports"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates() []domain.Checkpoint {
	return []domain.Checkpoint{
		{ID: "cafe-pacific", Name: "Café Pacific", Category: domain.CategoryDining, Location: "Gate 20-29", Description: "Coffee"},
		{ID: "wing-lounge", Name: "The Wing Lounge", Category: domain.CategoryLounge, Location: "Gate 1-19", Description: "First Class"},
	}
}

func answer(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	}))
}

func newTestProvider(t *testing.T, h http.HandlerFunc) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider("test-key", "", WithBaseURL(srv.URL), WithRetry(3, time.Millisecond))
	require.NoError(t, err)
	return p
}

func TestGeminiProviderSuggest(t *testing.T) {
	var got generateRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-flash-latest:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		answer(t, w, `{"response": "Grab a coffee at Café Pacific.", "checkpointIds": ["cafe-pacific"]}`)
	})

	res, err := p.Suggest(context.Background(), ports.SuggestionRequest{
		Query:      "coffee",
		Language:   "en",
		Candidates: candidates(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Grab a coffee at Café Pacific.", res.Text)
	assert.Equal(t, []string{"cafe-pacific"}, res.CheckpointIDs)

	require.Len(t, got.Contents, 1)
	prompt := got.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "ID: cafe-pacific")
	assert.Contains(t, prompt, "ID: wing-lounge")
	assert.True(t, strings.HasSuffix(prompt, "用户查询: coffee"))
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMimeType)
	assert.Equal(t, 0, got.GenerationConfig.ThinkingConfig.ThinkingBudget)
}

func TestGeminiProviderRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		answer(t, w, `{"response": "ok", "checkpointIds": []}`)
	})

	res, err := p.Suggest(context.Background(), ports.SuggestionRequest{Query: "hi", Candidates: candidates()})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Text)
	assert.Empty(t, res.CheckpointIDs)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGeminiProviderFailures(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantCalls int32
	}{
		{
			name:      "client error is not retried",
			handler:   func(w http.ResponseWriter, r *http.Request) { http.Error(w, "bad key", http.StatusForbidden) },
			wantCalls: 1,
		},
		{
			name:      "server error exhausts retries",
			handler:   func(w http.ResponseWriter, r *http.Request) { http.Error(w, "down", http.StatusInternalServerError) },
			wantCalls: 3,
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates": []}`))
			},
			wantCalls: 1,
		},
		{
			name: "answer is not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				answer(t, w, "Sure! Try the lounge.")
			},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				tt.handler(w, r)
			})

			_, err := p.Suggest(context.Background(), ports.SuggestionRequest{Query: "lounge", Candidates: candidates()})
			assert.Error(t, err)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestGeminiProviderStopsOnCancel(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusTooManyRequests)
	})
	p.backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Suggest(ctx, ports.SuggestionRequest{Query: "lounge"})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider("", "")
	assert.Error(t, err)
}

func TestBuildPromptLanguage(t *testing.T) {
	zh := buildPrompt(ports.SuggestionRequest{Query: "咖啡", Language: "zh", Candidates: candidates()})
	assert.Contains(t, zh, "简体中文")
	assert.Contains(t, zh, "名称: Café Pacific")

	en := buildPrompt(ports.SuggestionRequest{Query: "coffee", Language: "en"})
	assert.Contains(t, en, "Recommend 1 to 3 facilities")
}
