package services

import (
	"fmt"
	"time"

	"izuran/internal/lineup"
	"izuran/internal/models"
	"izuran/internal/pricing"
)

// EventRepository interface for event data
type EventRepository interface {
	List() ([]models.Event, error)
	GetByID(id string) (*models.Event, error)
}

// EventService handles event listing business logic: it decorates raw
// events with the resolved ticket price phase and the parsed, matched
// lineup the detail pages render.
type EventService struct {
	eventRepo  EventRepository
	artistRepo ArtistRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository, artistRepo ArtistRepository) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		artistRepo: artistRepo,
	}
}

// EventView is an event decorated for presentation
type EventView struct {
	models.Event
	Price        string         `json:"price"`
	PricePhase   string         `json:"price_phase"`
	DisplayPrice string         `json:"display_price"`
	LineupSlots  []lineup.Entry `json:"lineup_slots"`
}

// ListEvents returns all published events with their current price phase
// resolved at the given instant
func (s *EventService) ListEvents(now time.Time) ([]EventView, error) {
	events, err := s.eventRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	views := make([]EventView, 0, len(events))
	for i := range events {
		views = append(views, s.buildView(&events[i], now, false))
	}
	return views, nil
}

// GetEvent returns a single event with pricing and the fully matched
// lineup
func (s *EventService) GetEvent(id string, now time.Time) (*EventView, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("event not found: %w", err)
	}

	view := s.buildView(event, now, true)
	return &view, nil
}

// buildView resolves pricing and, for detail views, parses the lineup
// and matches it against the roster
func (s *EventService) buildView(event *models.Event, now time.Time, withLineup bool) EventView {
	price, phase := pricing.CurrentPrice(event, now)

	view := EventView{
		Event:        *event,
		Price:        price,
		PricePhase:   phase,
		DisplayPrice: pricing.DisplayPrice(price),
	}

	if withLineup {
		view.LineupSlots = s.matchedLineup(event.Lineup)
	}

	return view
}

// matchedLineup parses the event's lineup text and resolves each entry
// against the artist roster. A roster fetch failure degrades to an
// unmatched lineup rather than failing the event view.
func (s *EventService) matchedLineup(lineupText string) []lineup.Entry {
	entries := lineup.Parse(lineupText)
	if len(entries) == 0 {
		return entries
	}

	artists, err := s.artistRepo.List()
	if err != nil {
		return entries
	}

	lineup.MatchArtists(entries, artists)
	return entries
}
