package services

import (
	"fmt"
	"slices"
	"sync"
	"terminal-itinerary-service/internal/domain"
	"time"
)

// Itinerary owns one traveler's selection of checkpoints and its derived timeline.
//
// Every mutation that changes the selection re-optimizes the full order
// (entrance pinned first, gate pinned last) and regenerates the timeline.
// Mutations that would not change the selection are no-ops and do not
// recompute. The itinerary is safe for concurrent use.
type Itinerary struct {
	mu        sync.Mutex
	catalog   *domain.Catalog
	mandatory domain.MandatorySet

	selection []string
	step      int
	startAt   time.Time
	deadline  time.Time
	timeline  []domain.TimelineEntry
	revision  int
}

// ItineraryView is a consistent read of an itinerary at one revision.
type ItineraryView struct {
	Selection    []string
	Timeline     []domain.TimelineEntry
	CurrentStep  int
	StartAt      time.Time
	TotalMinutes int
	Boarding     BoardingStatus
	Revision     int
}

// NewItinerary starts an itinerary with the mandatory checkpoints only.
// It fails fast when no catalog is available.
func NewItinerary(catalog *domain.Catalog, startAt, boardingDeadline time.Time) (*Itinerary, error) {
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("new itinerary: %w", domain.ErrCatalogUnavailable)
	}

	it := &Itinerary{
		catalog:   catalog,
		mandatory: catalog.Mandatory(),
		step:      1,
		startAt:   startAt,
		deadline:  boardingDeadline,
	}
	it.setSelection(it.optimize(it.mandatory.Initial()))

	return it, nil
}

// RestoreItinerary rebuilds an itinerary from a saved state.
// The stored order is kept as-is; ids the catalog no longer knows are dropped.
func RestoreItinerary(catalog *domain.Catalog, state domain.ItineraryState) (*Itinerary, error) {
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("restore itinerary: %w", domain.ErrCatalogUnavailable)
	}

	selection := make([]string, 0, len(state.Selection))
	for _, id := range state.Selection {
		if catalog.Has(id) && !slices.Contains(selection, id) {
			selection = append(selection, id)
		}
	}

	it := &Itinerary{
		catalog:   catalog,
		mandatory: catalog.Mandatory(),
		step:      state.CurrentStep,
		startAt:   state.StartTime,
		deadline:  state.BoardingDeadline,
	}
	it.selection = selection
	it.clampStep(it.step)
	it.rebuildTimeline()

	return it, nil
}

// Toggle removes id when selected and adds it otherwise. Mandatory ids are ignored.
func (it *Itinerary) Toggle(id string) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.mandatory.Contains(id) {
		return
	}

	if slices.Contains(it.selection, id) {
		it.setSelection(it.optimize(without(it.selection, id)))
		return
	}
	it.setSelection(it.optimize(append(slices.Clone(it.selection), id)))
}

// Add appends id and re-optimizes. Already selected ids are ignored.
func (it *Itinerary) Add(id string) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if slices.Contains(it.selection, id) {
		return
	}
	it.setSelection(it.optimize(append(slices.Clone(it.selection), id)))
}

// AddMultiple appends every id not yet selected and re-optimizes once.
func (it *Itinerary) AddMultiple(ids []string) {
	it.mu.Lock()
	defer it.mu.Unlock()

	fresh := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(it.selection, id) {
			fresh = append(fresh, id)
		}
	}
	if len(fresh) == 0 {
		return
	}

	next := append(slices.Clone(it.selection), fresh...)
	it.setSelection(it.optimize(next))
}

// Remove drops id and re-optimizes. Mandatory ids are ignored.
func (it *Itinerary) Remove(id string) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.mandatory.Contains(id) {
		return
	}
	it.setSelection(it.optimize(without(it.selection, id)))
}

// Reset restores the mandatory-only selection and rewinds to step 1.
func (it *Itinerary) Reset() {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.setSelection(it.optimize(it.mandatory.Initial()))
	it.step = 1
}

// SetStep moves the progress marker, clamped to [1, max(1, len(selection))].
func (it *Itinerary) SetStep(step int) {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.step = max(1, min(step, max(1, len(it.selection))))
}

// SetStartTime moves the journey start and regenerates the timeline.
func (it *Itinerary) SetStartTime(t time.Time) {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.startAt = t
	it.rebuildTimeline()
}

// ShiftStartTime moves the journey start by a signed number of minutes.
func (it *Itinerary) ShiftStartTime(minutes int) {
	it.mu.Lock()
	defer it.mu.Unlock()

	it.startAt = it.startAt.Add(time.Duration(minutes) * time.Minute)
	it.rebuildTimeline()
}

// Selection returns a copy of the ordered selection.
func (it *Itinerary) Selection() []string {
	it.mu.Lock()
	defer it.mu.Unlock()
	return slices.Clone(it.selection)
}

// Timeline returns a copy of the current timeline.
func (it *Itinerary) Timeline() []domain.TimelineEntry {
	it.mu.Lock()
	defer it.mu.Unlock()
	return slices.Clone(it.timeline)
}

func (it *Itinerary) CurrentStep() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.step
}

func (it *Itinerary) StartTime() time.Time {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.startAt
}

// Revision counts selection recomputations; no-op mutations leave it unchanged.
func (it *Itinerary) Revision() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.revision
}

// Mandatory returns the pinned checkpoint ids.
func (it *Itinerary) Mandatory() domain.MandatorySet {
	return it.mandatory
}

// View returns selection, timeline and derived figures from one consistent read.
func (it *Itinerary) View() ItineraryView {
	it.mu.Lock()
	defer it.mu.Unlock()

	return ItineraryView{
		Selection:    slices.Clone(it.selection),
		Timeline:     slices.Clone(it.timeline),
		CurrentStep:  it.step,
		StartAt:      it.startAt,
		TotalMinutes: TotalMinutes(it.timeline),
		Boarding:     CheckBoarding(it.deadline, it.timeline, it.startAt),
		Revision:     it.revision,
	}
}

// Snapshot captures the persistable state.
func (it *Itinerary) Snapshot() domain.ItineraryState {
	it.mu.Lock()
	defer it.mu.Unlock()

	return domain.ItineraryState{
		Selection:        slices.Clone(it.selection),
		CurrentStep:      it.step,
		StartTime:        it.startAt,
		BoardingDeadline: it.deadline,
	}
}

func (it *Itinerary) optimize(ids []string) []string {
	return OptimizeOrder(ids, it.catalog, OptimizeOptions{
		StartID: it.mandatory.EntranceID,
		EndID:   it.mandatory.GateID,
	})
}

// setSelection installs a new selection and refreshes everything derived from it.
func (it *Itinerary) setSelection(next []string) {
	it.selection = next
	it.revision++
	it.clampStep(it.step)
	it.rebuildTimeline()
}

func (it *Itinerary) clampStep(step int) {
	it.step = max(1, min(step, max(1, len(it.selection))))
}

func (it *Itinerary) rebuildTimeline() {
	it.timeline = GenerateTimeline(it.catalog.Resolve(it.selection), it.startAt)
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
