package suggest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"terminal-itinerary-service/internal/ports"
)

// MockProvider answers from a fixed table keyed by lowercased query.
// It records every request it receives.
type MockProvider struct {
	mu       sync.Mutex
	answers  map[string]ports.SuggestionResult
	err      error
	requests []ports.SuggestionRequest
}

func NewMockProvider(answers map[string]ports.SuggestionResult) *MockProvider {
	m := make(map[string]ports.SuggestionResult, len(answers))
	for q, r := range answers {
		m[strings.ToLower(q)] = r
	}
	return &MockProvider{answers: m}
}

// NewFailingProvider returns a provider whose every call fails with err.
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{answers: map[string]ports.SuggestionResult{}, err: err}
}

func (p *MockProvider) Suggest(ctx context.Context, req ports.SuggestionRequest) (ports.SuggestionResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = append(p.requests, req)

	if p.err != nil {
		return ports.SuggestionResult{}, p.err
	}

	r, ok := p.answers[strings.ToLower(req.Query)]
	if !ok {
		return ports.SuggestionResult{}, fmt.Errorf("no canned answer for %q", req.Query)
	}
	return r, nil
}

// Requests returns the requests seen so far.
func (p *MockProvider) Requests() []ports.SuggestionRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.SuggestionRequest(nil), p.requests...)
}
