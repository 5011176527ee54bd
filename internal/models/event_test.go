package models

import (
	"testing"
	"time"
)

func TestEvent_Validate(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(6 * time.Hour)

	tests := []struct {
		name    string
		event   Event
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid event",
			event: Event{
				Title:     "Izuran Night 009",
				Venue:     "Warehouse 12",
				StartDate: start,
				EndDate:   end,
				Status:    EventPublished,
			},
			wantErr: false,
		},
		{
			name: "invalid title - empty",
			event: Event{
				Title:     "",
				Venue:     "Warehouse 12",
				StartDate: start,
				EndDate:   end,
				Status:    EventPublished,
			},
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name: "invalid venue - empty",
			event: Event{
				Title:     "Izuran Night 009",
				Venue:     "",
				StartDate: start,
				EndDate:   end,
				Status:    EventPublished,
			},
			wantErr: true,
			errMsg:  "venue is required",
		},
		{
			name: "invalid dates - start after end",
			event: Event{
				Title:     "Izuran Night 009",
				Venue:     "Warehouse 12",
				StartDate: end,
				EndDate:   start,
				Status:    EventPublished,
			},
			wantErr: true,
			errMsg:  "start date must be before end date",
		},
		{
			name: "invalid dates - missing start",
			event: Event{
				Title:   "Izuran Night 009",
				Venue:   "Warehouse 12",
				EndDate: end,
				Status:  EventPublished,
			},
			wantErr: true,
			errMsg:  "start date is required",
		},
		{
			name: "invalid status",
			event: Event{
				Title:     "Izuran Night 009",
				Venue:     "Warehouse 12",
				StartDate: start,
				EndDate:   end,
				Status:    "archived",
			},
			wantErr: true,
			errMsg:  "invalid event status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Event.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Event.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestEvent_StatusPredicates(t *testing.T) {
	published := Event{Status: EventPublished}
	if !published.IsPublished() {
		t.Error("Event.IsPublished() = false for published event")
	}
	if published.IsCancelled() {
		t.Error("Event.IsCancelled() = true for published event")
	}

	cancelled := Event{Status: EventCancelled}
	if !cancelled.IsCancelled() {
		t.Error("Event.IsCancelled() = false for cancelled event")
	}
	if cancelled.IsPublished() {
		t.Error("Event.IsPublished() = true for cancelled event")
	}
}

func TestEvent_TimePredicates(t *testing.T) {
	now := time.Now()

	upcoming := Event{StartDate: now.Add(time.Hour), EndDate: now.Add(7 * time.Hour)}
	if !upcoming.IsUpcoming() {
		t.Error("Event.IsUpcoming() = false for future event")
	}
	if upcoming.IsPast() {
		t.Error("Event.IsPast() = true for future event")
	}

	ongoing := Event{StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)}
	if !ongoing.IsOngoing() {
		t.Error("Event.IsOngoing() = false for event in progress")
	}

	past := Event{StartDate: now.Add(-7 * time.Hour), EndDate: now.Add(-time.Hour)}
	if !past.IsPast() {
		t.Error("Event.IsPast() = false for finished event")
	}
	if past.IsUpcoming() {
		t.Error("Event.IsUpcoming() = true for finished event")
	}
}

func TestEvent_HasLineup(t *testing.T) {
	e := Event{Lineup: "22:00 XianZai, 00:00 Mthreal"}
	if !e.HasLineup() {
		t.Error("Event.HasLineup() = false for event with lineup")
	}

	e.Lineup = "   "
	if e.HasLineup() {
		t.Error("Event.HasLineup() = true for whitespace-only lineup")
	}
}
