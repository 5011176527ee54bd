package models

import (
	"errors"
	"time"
)

// TicketStatus represents the status of an issued ticket
type TicketStatus string

const (
	TicketActive  TicketStatus = "active"
	TicketUsed    TicketStatus = "used"
	TicketRevoked TicketStatus = "revoked"
)

// Ticket represents an individual issued ticket. The Code is the payload
// encoded in the ticket's QR image and presented at the door.
type Ticket struct {
	ID         string       `json:"id"`
	EventID    string       `json:"event_id"`
	Code       string       `json:"code"`
	HolderName string       `json:"holder_name,omitempty"`
	Status     TicketStatus `json:"status"`
	IssuedAt   time.Time    `json:"issued_at"`
	UsedAt     *time.Time   `json:"used_at,omitempty"`
}

// Validate validates the ticket data
func (t *Ticket) Validate() error {
	if err := t.validateCode(); err != nil {
		return err
	}

	if err := t.validateStatus(); err != nil {
		return err
	}

	return nil
}

// validateCode validates the ticket code
func (t *Ticket) validateCode() error {
	if t.Code == "" {
		return errors.New("ticket code is required")
	}

	if len(t.Code) > 255 {
		return errors.New("ticket code must be less than 255 characters")
	}

	return nil
}

// validateStatus validates the ticket status
func (t *Ticket) validateStatus() error {
	switch t.Status {
	case TicketActive, TicketUsed, TicketRevoked:
		return nil
	default:
		return errors.New("invalid ticket status")
	}
}

// IsActive returns true if the ticket is active
func (t *Ticket) IsActive() bool {
	return t.Status == TicketActive
}

// IsUsed returns true if the ticket has been used
func (t *Ticket) IsUsed() bool {
	return t.Status == TicketUsed
}

// IsRevoked returns true if the ticket has been revoked
func (t *Ticket) IsRevoked() bool {
	return t.Status == TicketRevoked
}

// CanBeUsed returns true if the ticket can be used (scanned at the door)
func (t *Ticket) CanBeUsed() bool {
	return t.Status == TicketActive
}
