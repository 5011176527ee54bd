package repositories

import (
	"fmt"
	"sort"

	"izuran/internal/models"
)

// EventRepository serves event listings
type EventRepository struct {
	events []models.Event
}

// NewEventRepository loads events from events.json in the data directory
func NewEventRepository(dataDir string) (*EventRepository, error) {
	var events []models.Event
	if err := loadJSON(dataDir, "events.json", &events); err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	return &EventRepository{events: events}, nil
}

// List returns all published events, soonest first
func (r *EventRepository) List() ([]models.Event, error) {
	var events []models.Event
	for _, event := range r.events {
		if event.IsPublished() {
			events = append(events, event)
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})

	return events, nil
}

// GetByID returns the event with the given id regardless of status
func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	for i := range r.events {
		if r.events[i].ID == id {
			event := r.events[i]
			return &event, nil
		}
	}
	return nil, fmt.Errorf("event %q: %w", id, models.ErrNotFound)
}
