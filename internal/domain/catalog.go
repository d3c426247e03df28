package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCatalogUnavailable is returned when an itinerary is requested before a
// usable checkpoint catalog has been loaded.
var ErrCatalogUnavailable = errors.New("checkpoint catalog unavailable")

// Catalog is the immutable, ordered set of checkpoints for one terminal.
// It is built once at startup and only read afterwards.
type Catalog struct {
	list  []Checkpoint
	index map[string]int
}

// MandatorySet holds the pinned identifiers of an itinerary.
// Any field may be empty when the catalog has no mandatory checkpoint of that kind.
type MandatorySet struct {
	EntranceID string
	CustomsID  string
	GateID     string
	IDs        []string
}

// NewCatalog validates checkpoints and builds the lookup index.
// Input order is preserved; it drives mandatory resolution and fallback suggestions.
func NewCatalog(checkpoints []Checkpoint) (*Catalog, error) {
	if len(checkpoints) == 0 {
		return nil, fmt.Errorf("new catalog: %w", ErrCatalogUnavailable)
	}

	c := &Catalog{
		list:  make([]Checkpoint, 0, len(checkpoints)),
		index: make(map[string]int, len(checkpoints)),
	}

	for i, cp := range checkpoints {
		id := strings.TrimSpace(cp.ID)
		if id == "" {
			return nil, fmt.Errorf("new catalog: checkpoint at index %d has empty id", i)
		}
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("new catalog: duplicate checkpoint id %q", id)
		}

		category, err := ParseCategory(string(cp.Category))
		if err != nil {
			return nil, fmt.Errorf("new catalog: checkpoint %q: %w", id, err)
		}

		if !cp.Position().InBounds() {
			return nil, fmt.Errorf("new catalog: checkpoint %q position (%v, %v) outside [0,100]", id, cp.X, cp.Y)
		}

		if cp.EstimatedMinutes != nil && *cp.EstimatedMinutes < 0 {
			return nil, fmt.Errorf("new catalog: checkpoint %q has negative duration", id)
		}

		cp.ID = id
		cp.Category = category
		c.index[id] = len(c.list)
		c.list = append(c.list, cp)
	}

	return c, nil
}

// Len returns the number of checkpoints.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.list)
}

// All returns a copy of the checkpoints in catalog order.
func (c *Catalog) All() []Checkpoint {
	if c == nil {
		return nil
	}
	out := make([]Checkpoint, len(c.list))
	copy(out, c.list)
	return out
}

// Lookup finds a checkpoint by identifier.
func (c *Catalog) Lookup(id string) (Checkpoint, bool) {
	if c == nil {
		return Checkpoint{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Checkpoint{}, false
	}
	return c.list[i], true
}

// Has reports whether id is part of the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

// Resolve maps identifiers to checkpoints, skipping identifiers the catalog does not know.
func (c *Catalog) Resolve(ids []string) []Checkpoint {
	out := make([]Checkpoint, 0, len(ids))
	for _, id := range ids {
		if cp, ok := c.Lookup(id); ok {
			out = append(out, cp)
		}
	}
	return out
}

// Mandatory resolves the pinned checkpoints.
//
// The first mandatory checkpoint of each kind wins; catalogs with several
// mandatory gates are order-dependent.
func (c *Catalog) Mandatory() MandatorySet {
	var set MandatorySet
	if c == nil {
		return set
	}

	for _, cp := range c.list {
		if !cp.Mandatory {
			continue
		}
		set.IDs = append(set.IDs, cp.ID)

		switch cp.Category {
		case CategoryEntrance:
			if set.EntranceID == "" {
				set.EntranceID = cp.ID
			}
		case CategoryCustoms:
			if set.CustomsID == "" {
				set.CustomsID = cp.ID
			}
		case CategoryGate:
			if set.GateID == "" {
				set.GateID = cp.ID
			}
		}
	}

	return set
}

// Contains reports whether id is one of the mandatory identifiers.
func (m MandatorySet) Contains(id string) bool {
	for _, mid := range m.IDs {
		if mid == id {
			return true
		}
	}
	return false
}

// Initial returns the starting selection: entrance, customs, gate, skipping absent ones.
func (m MandatorySet) Initial() []string {
	out := make([]string, 0, 3)
	for _, id := range []string{m.EntranceID, m.CustomsID, m.GateID} {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
