package models

import (
	"errors"
	"strings"
	"time"
)

// EventStatus represents the status of an event
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCancelled EventStatus = "cancelled"
)

// Event represents a label event or club night
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Venue       string      `json:"venue"`
	City        string      `json:"city,omitempty"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Lineup      string      `json:"lineup,omitempty"` // free-text, comma-delimited
	ImageURL    string      `json:"image_url,omitempty"`
	Status      EventStatus `json:"status"`

	// Tiered ticket pricing. Prices are decimal strings as entered in the
	// back office. End dates are absent for phases that never expire.
	EarlyBirdPrice     string     `json:"early_bird_price,omitempty"`
	EarlyBirdEndDate   *time.Time `json:"early_bird_end_date,omitempty"`
	SecondPhasePrice   string     `json:"second_phase_price,omitempty"`
	SecondPhaseEndDate *time.Time `json:"second_phase_end_date,omitempty"`
	LastPhasePrice     string     `json:"last_phase_price,omitempty"`
	TicketPrice        string     `json:"ticket_price,omitempty"` // legacy single price

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate validates the event data
func (e *Event) Validate() error {
	if err := validateEventTitle(e.Title); err != nil {
		return err
	}

	if err := validateEventVenue(e.Venue); err != nil {
		return err
	}

	if err := validateEventDates(e.StartDate, e.EndDate); err != nil {
		return err
	}

	if err := validateEventStatus(e.Status); err != nil {
		return err
	}

	return nil
}

// validateEventTitle validates the event title
func validateEventTitle(title string) error {
	if title == "" {
		return errors.New("title is required")
	}

	if len(title) > 255 {
		return errors.New("title must be less than 255 characters")
	}

	if strings.TrimSpace(title) == "" {
		return errors.New("title cannot be only whitespace")
	}

	return nil
}

// validateEventVenue validates the event venue
func validateEventVenue(venue string) error {
	if venue == "" {
		return errors.New("venue is required")
	}

	if len(venue) > 255 {
		return errors.New("venue must be less than 255 characters")
	}

	return nil
}

// validateEventDates validates event start and end dates
func validateEventDates(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return errors.New("start date is required")
	}

	if endDate.IsZero() {
		return errors.New("end date is required")
	}

	if startDate.After(endDate) {
		return errors.New("start date must be before end date")
	}

	return nil
}

// validateEventStatus validates the event status
func validateEventStatus(status EventStatus) error {
	switch status {
	case EventDraft, EventPublished, EventCancelled:
		return nil
	default:
		return errors.New("invalid event status")
	}
}

// IsPublished returns true if the event is published
func (e *Event) IsPublished() bool {
	return e.Status == EventPublished
}

// IsCancelled returns true if the event is cancelled
func (e *Event) IsCancelled() bool {
	return e.Status == EventCancelled
}

// IsUpcoming returns true if the event is in the future
func (e *Event) IsUpcoming() bool {
	return e.StartDate.After(time.Now())
}

// IsOngoing returns true if the event is currently happening
func (e *Event) IsOngoing() bool {
	now := time.Now()
	return now.After(e.StartDate) && now.Before(e.EndDate)
}

// IsPast returns true if the event has ended
func (e *Event) IsPast() bool {
	return e.EndDate.Before(time.Now())
}

// HasLineup returns true if the event has a lineup announced
func (e *Event) HasLineup() bool {
	return strings.TrimSpace(e.Lineup) != ""
}
