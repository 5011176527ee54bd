package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"izuran/internal/models"
)

// TicketRepository stores issued tickets in memory, snapshotting to a
// JSON file after every mutation so issued tickets survive restarts
type TicketRepository struct {
	mu       sync.RWMutex
	tickets  map[string]*models.Ticket // keyed by code
	snapshot string                    // file path, empty disables persistence
}

// NewTicketRepository creates a ticket repository, restoring any
// previous snapshot. An unreadable snapshot is discarded.
func NewTicketRepository(snapshotPath string) *TicketRepository {
	repo := &TicketRepository{
		tickets:  make(map[string]*models.Ticket),
		snapshot: snapshotPath,
	}
	repo.restore()
	return repo
}

// Create stores a newly issued ticket
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("invalid ticket: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tickets[ticket.Code]; exists {
		return fmt.Errorf("ticket code %q already issued", ticket.Code)
	}

	stored := *ticket
	r.tickets[ticket.Code] = &stored
	r.persist()

	return nil
}

// GetByCode returns the ticket with the given code
func (r *TicketRepository) GetByCode(code string) (*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticket, exists := r.tickets[code]
	if !exists {
		return nil, fmt.Errorf("ticket %q: %w", code, models.ErrNotFound)
	}

	found := *ticket
	return &found, nil
}

// UpdateStatus sets the status of the ticket with the given code,
// recording the scan time when the ticket is marked used
func (r *TicketRepository) UpdateStatus(code string, status models.TicketStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, exists := r.tickets[code]
	if !exists {
		return fmt.Errorf("ticket %q: %w", code, models.ErrNotFound)
	}

	ticket.Status = status
	if status == models.TicketUsed {
		now := time.Now()
		ticket.UsedAt = &now
	}
	r.persist()

	return nil
}

// ListByEvent returns all tickets issued for an event
func (r *TicketRepository) ListByEvent(eventID string) ([]models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tickets []models.Ticket
	for _, ticket := range r.tickets {
		if ticket.EventID == eventID {
			tickets = append(tickets, *ticket)
		}
	}
	return tickets, nil
}

// persist writes the snapshot. Callers hold the lock.
func (r *TicketRepository) persist() {
	if r.snapshot == "" {
		return
	}

	tickets := make([]models.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		tickets = append(tickets, *ticket)
	}

	data, err := json.Marshal(tickets)
	if err != nil {
		return
	}

	// Snapshot failures are non-fatal; the in-memory state is authoritative
	_ = os.WriteFile(r.snapshot, data, 0o644)
}

// restore loads the snapshot if one exists
func (r *TicketRepository) restore() {
	if r.snapshot == "" {
		return
	}

	data, err := os.ReadFile(r.snapshot)
	if err != nil {
		return
	}

	var tickets []models.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		return
	}

	for i := range tickets {
		r.tickets[tickets[i].Code] = &tickets[i]
	}
}
