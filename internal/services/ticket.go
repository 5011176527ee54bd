package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"izuran/internal/models"
)

// TicketRepository interface for issued-ticket data
type TicketRepository interface {
	Create(ticket *models.Ticket) error
	GetByCode(code string) (*models.Ticket, error)
	UpdateStatus(code string, status models.TicketStatus) error
	ListByEvent(eventID string) ([]models.Ticket, error)
}

// TicketService handles ticket issuance and door validation
type TicketService struct {
	ticketRepo TicketRepository
	eventRepo  EventRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(ticketRepo TicketRepository, eventRepo EventRepository) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
	}
}

// IssueTicket issues a ticket for an event with a unique scannable code
func (s *TicketService) IssueTicket(eventID, holderName string) (*models.Ticket, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("event not found: %w", err)
	}

	if event.IsCancelled() {
		return nil, fmt.Errorf("cannot issue tickets for a cancelled event")
	}

	if event.IsPast() {
		return nil, fmt.Errorf("cannot issue tickets for a past event")
	}

	code, err := generateTicketCode(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket code: %w", err)
	}

	ticket := &models.Ticket{
		ID:         code,
		EventID:    eventID,
		Code:       code,
		HolderName: holderName,
		Status:     models.TicketActive,
		IssuedAt:   time.Now(),
	}

	if err := s.ticketRepo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to store ticket: %w", err)
	}

	return ticket, nil
}

// ValidateTicket validates a scanned code for event entry without
// consuming the ticket
func (s *TicketService) ValidateTicket(code, eventID string) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByCode(code)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket: %w", err)
	}

	if ticket.EventID != eventID {
		return nil, fmt.Errorf("ticket is not valid for this event")
	}

	if !ticket.CanBeUsed() {
		return nil, fmt.Errorf("ticket cannot be used (status: %s)", ticket.Status)
	}

	return ticket, nil
}

// UseTicket validates a scanned code and marks the ticket used
func (s *TicketService) UseTicket(code, eventID string) (*models.Ticket, error) {
	ticket, err := s.ValidateTicket(code, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.ticketRepo.UpdateStatus(ticket.Code, models.TicketUsed); err != nil {
		return nil, fmt.Errorf("failed to mark ticket as used: %w", err)
	}

	used, err := s.ticketRepo.GetByCode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to reload ticket: %w", err)
	}
	return used, nil
}

// GetEventTickets returns all tickets issued for an event
func (s *TicketService) GetEventTickets(eventID string) ([]models.Ticket, error) {
	tickets, err := s.ticketRepo.ListByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event tickets: %w", err)
	}
	return tickets, nil
}

// TicketQR renders the ticket's code as a QR PNG at the given size
func (s *TicketService) TicketQR(code string, size int) ([]byte, error) {
	ticket, err := s.ticketRepo.GetByCode(code)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket: %w", err)
	}

	png, err := qrcode.Encode(ticket.Code, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}

// generateTicketCode generates a unique scannable ticket code
func generateTicketCode(eventID string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return fmt.Sprintf("IZN-%s-%d-%s", eventID, time.Now().Unix(), hex.EncodeToString(randomBytes)), nil
}
