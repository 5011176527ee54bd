// Package pricing resolves the currently active ticket price tier for an
// event from its time-windowed pricing phases.
package pricing

import (
	"strings"
	"time"

	"izuran/internal/models"
)

// Phase labels as displayed on event pages
const (
	PhaseEarlyBird   = "Early Bird"
	PhaseSecondPhase = "Second Phase"
	PhaseLastPhase   = "Last Phase"
	PhaseStandard    = "Standard"
)

// CurrentPrice returns the active ticket price and phase label for the
// event at the given instant. Phases are checked in fixed priority order:
// Early Bird, Second Phase, Last Phase, then the legacy single price. An
// event with no price fields set yields ("", ""), signaling the caller
// there is no price to display.
//
// The order must not change: an event with an active early-bird window
// and a lapsed second-phase window reports Early Bird, never falls
// through.
func CurrentPrice(e *models.Event, now time.Time) (price, phase string) {
	if e.EarlyBirdPrice != "" && activeWindow(e.EarlyBirdEndDate, now) {
		return e.EarlyBirdPrice, PhaseEarlyBird
	}

	if e.SecondPhasePrice != "" && activeWindow(e.SecondPhaseEndDate, now) {
		return e.SecondPhasePrice, PhaseSecondPhase
	}

	// Last phase has no expiry and is the terminal tiered fallback
	if e.LastPhasePrice != "" {
		return e.LastPhasePrice, PhaseLastPhase
	}

	if e.TicketPrice != "" {
		return e.TicketPrice, PhaseStandard
	}

	return "", ""
}

// activeWindow reports whether now is strictly before the phase end
// date. A phase with a price but no end date is never active and falls
// through to the next tier.
func activeWindow(endDate *time.Time, now time.Time) bool {
	return endDate != nil && now.Before(*endDate)
}

// DisplayPrice formats a resolved price for display: prices already
// carrying a currency symbol pass through untouched, bare numbers get a
// dollar prefix. Cosmetic only; the stored price is never mutated.
func DisplayPrice(price string) string {
	if price == "" || strings.Contains(price, "$") {
		return price
	}
	return "$" + price
}
