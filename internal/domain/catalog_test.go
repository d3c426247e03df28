package domain

import (
	"errors"
	"testing"
)

func sampleCheckpoints() []Checkpoint {
	return []Checkpoint{
		{ID: "entrance", Name: "Entrance", Category: CategoryEntrance, X: 15, Y: 25, Mandatory: true, EstimatedMinutes: Minutes(2)},
		{ID: "customs", Name: "Customs", Category: CategoryCustoms, X: 18, Y: 50, Mandatory: true},
		{ID: "gate", Name: "Gate", Category: CategoryGate, X: 80, Y: 50, Mandatory: true, EstimatedMinutes: Minutes(5)},
		{ID: "cafe", Name: "Cafe", Category: CategoryDining, X: 45, Y: 35, EstimatedMinutes: Minutes(0)},
	}
}

func TestNewCatalogPreservesOrderAndIndexes(t *testing.T) {
	// build test data
	cps := sampleCheckpoints()

	// call the method under test
	catalog, err := NewCatalog(cps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// verify behavior
	if catalog.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", catalog.Len())
	}
	for i, cp := range catalog.All() {
		if cp.ID != cps[i].ID {
			t.Errorf("All()[%d] = %q, want %q", i, cp.ID, cps[i].ID)
		}
	}

	cafe, ok := catalog.Lookup("cafe")
	if !ok {
		t.Fatalf("Lookup(cafe) not found")
	}
	if cafe.DwellMinutes() != DefaultDwellMinutes {
		t.Errorf("zero estimate should fall back to %d, got %d", DefaultDwellMinutes, cafe.DwellMinutes())
	}

	customs, _ := catalog.Lookup("customs")
	if customs.DwellMinutes() != DefaultDwellMinutes {
		t.Errorf("missing estimate should fall back to %d, got %d", DefaultDwellMinutes, customs.DwellMinutes())
	}

	if catalog.Has("lounge") {
		t.Errorf("Has(lounge) = true for unknown id")
	}

	resolved := catalog.Resolve([]string{"gate", "missing", "entrance"})
	if len(resolved) != 2 || resolved[0].ID != "gate" || resolved[1].ID != "entrance" {
		t.Errorf("Resolve skipped wrong ids: %+v", resolved)
	}
}

func TestNewCatalogRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Checkpoint) []Checkpoint
		target error
	}{
		{
			name:   "empty",
			mutate: func([]Checkpoint) []Checkpoint { return nil },
			target: ErrCatalogUnavailable,
		},
		{
			name: "duplicate id",
			mutate: func(cps []Checkpoint) []Checkpoint {
				return append(cps, Checkpoint{ID: "cafe", Name: "Again", Category: CategoryDining, X: 1, Y: 1})
			},
		},
		{
			name: "unknown category",
			mutate: func(cps []Checkpoint) []Checkpoint {
				cps[3].Category = "security"
				return cps
			},
			target: ErrUnknownCategory,
		},
		{
			name: "out of bounds",
			mutate: func(cps []Checkpoint) []Checkpoint {
				cps[3].X = 101
				return cps
			},
		},
		{
			name: "negative duration",
			mutate: func(cps []Checkpoint) []Checkpoint {
				cps[3].EstimatedMinutes = Minutes(-5)
				return cps
			},
		},
		{
			name: "blank id",
			mutate: func(cps []Checkpoint) []Checkpoint {
				cps[3].ID = "  "
				return cps
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.mutate(sampleCheckpoints()))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Fatalf("error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestMandatorySet(t *testing.T) {
	cps := sampleCheckpoints()
	cps = append(cps, Checkpoint{ID: "gate-2", Name: "Gate 2", Category: CategoryGate, X: 90, Y: 50, Mandatory: true})

	catalog, err := NewCatalog(cps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := catalog.Mandatory()
	if set.EntranceID != "entrance" || set.CustomsID != "customs" || set.GateID != "gate" {
		t.Fatalf("unexpected mandatory set: %+v", set)
	}
	if !set.Contains("gate-2") {
		t.Errorf("second mandatory gate should still be protected")
	}
	if set.Contains("cafe") {
		t.Errorf("cafe is not mandatory")
	}

	initial := set.Initial()
	want := []string{"entrance", "customs", "gate"}
	if len(initial) != len(want) {
		t.Fatalf("Initial() = %v, want %v", initial, want)
	}
	for i := range want {
		if initial[i] != want[i] {
			t.Fatalf("Initial() = %v, want %v", initial, want)
		}
	}
}

func TestMandatorySetSkipsMissingKinds(t *testing.T) {
	catalog, err := NewCatalog([]Checkpoint{
		{ID: "cafe", Name: "Cafe", Category: CategoryDining, X: 10, Y: 10},
		{ID: "gate", Name: "Gate", Category: CategoryGate, X: 90, Y: 90, Mandatory: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	initial := catalog.Mandatory().Initial()
	if len(initial) != 1 || initial[0] != "gate" {
		t.Fatalf("Initial() = %v, want [gate]", initial)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Lounge ")
	if err != nil || c != CategoryLounge {
		t.Fatalf("ParseCategory = %q, %v", c, err)
	}
	if _, err := ParseCategory("security"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 {
		t.Fatalf("nil catalog Len() = %d", c.Len())
	}
}
