package services

import (
	"testing"
	"terminal-itinerary-service/internal/domain"
	"time"
)

func terminalCheckpoints() []domain.Checkpoint {
	cp := func(id, name string, c domain.Category, x, y float64, minutes int, mandatory bool) domain.Checkpoint {
		return domain.Checkpoint{
			ID: id, Name: name, Category: c, Terminal: "Terminal 1",
			X: x, Y: y, Mandatory: mandatory, EstimatedMinutes: domain.Minutes(minutes),
		}
	}

	return []domain.Checkpoint{
		cp("airport-entrance", "Airport Entrance", domain.CategoryEntrance, 15, 25, 2, true),
		cp("customs", "Customs & Immigration", domain.CategoryCustoms, 18, 50, 15, true),
		cp("gate-23", "Gate 23", domain.CategoryGate, 80, 50, 5, true),
		cp("cafe-pacific", "Café Pacific", domain.CategoryDining, 45, 35, 15, false),
		cp("pier-restaurant", "The Pier Restaurant", domain.CategoryDining, 48, 65, 45, false),
		cp("jade-dragon", "Jade Dragon", domain.CategoryDining, 55, 42, 60, false),
		cp("quick-bites", "Quick Bites", domain.CategoryDining, 70, 55, 10, false),
		cp("duty-free", "Duty Free", domain.CategoryShopping, 38, 45, 20, false),
		cp("electronics-hub", "Electronics Hub", domain.CategoryShopping, 42, 58, 25, false),
		cp("fashion-gallery", "Fashion Gallery", domain.CategoryShopping, 52, 55, 30, false),
		cp("wing-lounge", "The Wing Lounge", domain.CategoryLounge, 62, 38, 60, false),
		cp("pier-lounge", "The Pier Lounge", domain.CategoryLounge, 58, 62, 45, false),
		cp("restroom-a", "Restroom A", domain.CategoryRestroom, 28, 50, 5, false),
		cp("restroom-b", "Restroom B", domain.CategoryRestroom, 75, 45, 5, false),
		cp("luggage-storage", "Luggage Storage", domain.CategoryLuggage, 22, 35, 10, false),
	}
}

func terminalCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog(terminalCheckpoints())
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return catalog
}

var nineAM = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }
