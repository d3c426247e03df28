package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"terminal-itinerary-service/internal/adapters/cache"
	"terminal-itinerary-service/internal/ports"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessions(t *testing.T) (*ItinerarySessions, *fixedClock) {
	t.Helper()
	clock := &fixedClock{now: nineAM}
	sessions, err := NewItinerarySessions(terminalCatalog(t), cache.NewMemoryItineraryStore(), clock, 0)
	require.NoError(t, err)
	return sessions, clock
}

func TestSessionsCreateAndGet(t *testing.T) {
	sessions, clock := newTestSessions(t)
	ctx := context.Background()

	id, view, err := sessions.Create(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, mandatoryOnly, view.Selection)
	assert.Equal(t, nineAM, view.StartAt)
	assert.Equal(t, nineAM.Add(DefaultBoardingLead), view.Boarding.Deadline)

	clock.now = nineAM.Add(time.Hour)
	got, err := sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, view.Selection, got.Selection)
	assert.Equal(t, view.Boarding.Deadline, got.Boarding.Deadline, "deadline is fixed at creation")
}

func TestSessionsCreateWithStartTime(t *testing.T) {
	sessions, _ := newTestSessions(t)

	start := nineAM.Add(-15 * time.Minute)
	_, view, err := sessions.Create(context.Background(), &start)
	require.NoError(t, err)
	assert.Equal(t, start, view.StartAt)
	assert.Equal(t, 58, view.Boarding.MarginMinutes)
}

func TestSessionsUpdatePersists(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	id, _, err := sessions.Create(ctx, nil)
	require.NoError(t, err)

	view, err := sessions.Update(ctx, id, func(it *Itinerary) {
		it.AddMultiple([]string{"duty-free", "jade-dragon"})
		it.SetStep(2)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, view.CurrentStep)

	sel, err := sessions.Selection(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, view.Selection, sel)
	assert.Len(t, sel, 5)
}

func TestSessionsUnknownID(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	_, err := sessions.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ports.ErrItineraryNotFound))

	_, err = sessions.Update(ctx, "missing", func(*Itinerary) {})
	assert.True(t, errors.Is(err, ports.ErrItineraryNotFound))

	err = sessions.Delete(ctx, "missing")
	assert.True(t, errors.Is(err, ports.ErrItineraryNotFound))
}

func TestSessionsDelete(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	id, _, err := sessions.Create(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, sessions.Delete(ctx, id))

	_, err = sessions.Get(ctx, id)
	assert.True(t, errors.Is(err, ports.ErrItineraryNotFound))
}

func TestSessionsConcurrentUpdatesKeepEveryChange(t *testing.T) {
	sessions, _ := newTestSessions(t)
	ctx := context.Background()

	id, _, err := sessions.Create(ctx, nil)
	require.NoError(t, err)

	ids := []string{"cafe-pacific", "duty-free", "jade-dragon", "restroom-a", "restroom-b", "wing-lounge", "pier-lounge"}

	var wg sync.WaitGroup
	errs := make(chan error, len(ids))
	for _, cp := range ids {
		wg.Add(1)
		go func(cp string) {
			defer wg.Done()
			if _, err := sessions.Update(ctx, id, func(it *Itinerary) { it.Add(cp) }); err != nil {
				errs <- fmt.Errorf("add %s: %w", cp, err)
			}
		}(cp)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	sel, err := sessions.Selection(ctx, id)
	require.NoError(t, err)
	assert.Len(t, sel, len(mandatoryOnly)+len(ids))
}

func TestNewItinerarySessionsValidates(t *testing.T) {
	_, err := NewItinerarySessions(nil, cache.NewMemoryItineraryStore(), nil, 0)
	assert.Error(t, err)

	_, err = NewItinerarySessions(terminalCatalog(t), nil, nil, 0)
	assert.Error(t, err)
}
