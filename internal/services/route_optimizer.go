package services

import (
	"math"
	"slices"
	"terminal-itinerary-service/internal/domain"
)

// OptimizeOptions pins the first and last stop of an ordering.
// Empty ids leave the corresponding end free.
type OptimizeOptions struct {
	StartID string
	EndID   string
}

// Order checkpoint ids into a walking sequence using a greedy nearest-neighbor walk.
//
// Ids are deduplicated (first occurrence wins) and ids unknown to the catalog
// are dropped. A pinned start is honored only when present in the input; a
// pinned end only when present and different from the start. Every other id,
// mandatory or not, is an ordinary middle stop.
//
// At each step the cheapest remaining middle stop by TravelMinutes is taken.
// Ties go to the stop that appears first in input order. The walk does not
// attempt global optimality.
func OptimizeOrder(ids []string, catalog *domain.Catalog, opts OptimizeOptions) []string {
	if len(ids) <= 1 {
		return append([]string(nil), ids...)
	}

	seen := make(map[string]struct{}, len(ids))
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		if !catalog.Has(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	if len(uniq) <= 1 {
		return uniq
	}

	hasStart := opts.StartID != "" && slices.Contains(uniq, opts.StartID)
	hasEnd := opts.EndID != "" && slices.Contains(uniq, opts.EndID) && opts.EndID != opts.StartID

	// Remaining pool keeps input order so ties resolve reproducibly.
	remaining := make([]string, 0, len(uniq))
	for _, id := range uniq {
		if hasStart && id == opts.StartID {
			continue
		}
		if hasEnd && id == opts.EndID {
			continue
		}
		remaining = append(remaining, id)
	}

	ordered := make([]string, 0, len(uniq))
	var currentID string

	if hasStart {
		currentID = opts.StartID
	} else {
		if len(remaining) == 0 {
			if hasEnd {
				return []string{opts.EndID}
			}
			return uniq
		}
		currentID = remaining[0]
		remaining = remaining[1:]
	}
	ordered = append(ordered, currentID)

	for len(remaining) > 0 {
		current, _ := catalog.Lookup(currentID)

		bestIdx := -1
		bestCost := math.MaxInt

		// Select next stop by minimum walking time (greedy step).
		for i, candidateID := range remaining {
			candidate, ok := catalog.Lookup(candidateID)
			if !ok {
				continue
			}
			// Strict comparison: the first minimum encountered wins.
			if cost := TravelMinutes(current, candidate); cost < bestCost {
				bestCost = cost
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			break
		}

		currentID = remaining[bestIdx]
		ordered = append(ordered, currentID)
		remaining = slices.Delete(remaining, bestIdx, bestIdx+1)
	}

	if hasEnd {
		ordered = append(ordered, opts.EndID)
	}

	return ordered
}
