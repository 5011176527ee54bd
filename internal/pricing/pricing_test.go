package pricing

import (
	"testing"
	"time"

	"izuran/internal/models"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCurrentPrice(t *testing.T) {
	now := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)
	past := timePtr(now.Add(-24 * time.Hour))
	future := timePtr(now.Add(24 * time.Hour))

	tests := []struct {
		name      string
		event     models.Event
		wantPrice string
		wantPhase string
	}{
		{
			name: "early bird active",
			event: models.Event{
				EarlyBirdPrice:     "20",
				EarlyBirdEndDate:   future,
				SecondPhasePrice:   "30",
				SecondPhaseEndDate: future,
				LastPhasePrice:     "40",
			},
			wantPrice: "20",
			wantPhase: PhaseEarlyBird,
		},
		{
			name: "early bird lapsed falls to second phase",
			event: models.Event{
				EarlyBirdPrice:     "20",
				EarlyBirdEndDate:   past,
				SecondPhasePrice:   "30",
				SecondPhaseEndDate: future,
			},
			wantPrice: "30",
			wantPhase: PhaseSecondPhase,
		},
		{
			name: "both windows lapsed falls to last phase",
			event: models.Event{
				EarlyBirdPrice:     "20",
				EarlyBirdEndDate:   past,
				SecondPhasePrice:   "30",
				SecondPhaseEndDate: past,
				LastPhasePrice:     "40",
			},
			wantPrice: "40",
			wantPhase: PhaseLastPhase,
		},
		{
			name: "last phase never expires",
			event: models.Event{
				LastPhasePrice: "40",
			},
			wantPrice: "40",
			wantPhase: PhaseLastPhase,
		},
		{
			name: "legacy ticket price fallback",
			event: models.Event{
				TicketPrice: "25",
			},
			wantPrice: "25",
			wantPhase: PhaseStandard,
		},
		{
			name:      "no price fields",
			event:     models.Event{},
			wantPrice: "",
			wantPhase: "",
		},
		{
			name: "price without end date falls through",
			event: models.Event{
				EarlyBirdPrice: "20",
				TicketPrice:    "25",
			},
			wantPrice: "25",
			wantPhase: PhaseStandard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, phase := CurrentPrice(&tt.event, now)
			if price != tt.wantPrice {
				t.Errorf("CurrentPrice() price = %q, want %q", price, tt.wantPrice)
			}
			if phase != tt.wantPhase {
				t.Errorf("CurrentPrice() phase = %q, want %q", phase, tt.wantPhase)
			}
		})
	}
}

func TestCurrentPrice_OrderIsFixed(t *testing.T) {
	// Active early bird must win even when a later phase window has
	// already lapsed
	now := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)
	event := models.Event{
		EarlyBirdPrice:     "20",
		EarlyBirdEndDate:   timePtr(now.Add(time.Hour)),
		SecondPhasePrice:   "30",
		SecondPhaseEndDate: timePtr(now.Add(-time.Hour)),
	}

	price, phase := CurrentPrice(&event, now)
	if price != "20" || phase != PhaseEarlyBird {
		t.Errorf("CurrentPrice() = (%q, %q), want (%q, %q)", price, phase, "20", PhaseEarlyBird)
	}
}

func TestDisplayPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{
			name:  "bare number gets dollar prefix",
			price: "20",
			want:  "$20",
		},
		{
			name:  "existing dollar sign passes through",
			price: "$20",
			want:  "$20",
		},
		{
			name:  "empty price stays empty",
			price: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayPrice(tt.price); got != tt.want {
				t.Errorf("DisplayPrice(%q) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}
