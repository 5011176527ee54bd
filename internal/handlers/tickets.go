package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"izuran/internal/services"
)

// TicketHandler handles ticket issuance and door validation
type TicketHandler struct {
	ticketService *services.TicketService
	qrSize        int
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService *services.TicketService, qrSize int) *TicketHandler {
	if qrSize <= 0 {
		qrSize = 256
	}
	return &TicketHandler{
		ticketService: ticketService,
		qrSize:        qrSize,
	}
}

// IssueTicket issues a new ticket for an event
func (h *TicketHandler) IssueTicket(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID    string `json:"event_id"`
		HolderName string `json:"holder_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == "" {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ticket, err := h.ticketService.IssueTicket(req.EventID, req.HolderName)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, ticket)
}

// ValidateTicket checks a scanned code for event entry. When "use" is
// set the ticket is consumed, so a second scan of the same code is
// rejected.
func (h *TicketHandler) ValidateTicket(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code    string `json:"code"`
		EventID string `json:"event_id"`
		Use     bool   `json:"use"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" || req.EventID == "" {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Use {
		used, useErr := h.ticketService.UseTicket(req.Code, req.EventID)
		if useErr != nil {
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"valid": false,
				"error": useErr.Error(),
			})
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"valid": true, "ticket": used})
		return
	}

	validated, err := h.ticketService.ValidateTicket(req.Code, req.EventID)
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"valid": true, "ticket": validated})
}

// TicketQR serves the ticket's QR code as a PNG image
func (h *TicketHandler) TicketQR(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	png, err := h.ticketService.TicketQR(code, h.qrSize)
	if err != nil {
		respondError(w, http.StatusNotFound, "Ticket not found")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ListEventTickets returns all tickets issued for an event
func (h *TicketHandler) ListEventTickets(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	tickets, err := h.ticketService.GetEventTickets(eventID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list tickets")
		return
	}

	respondJSON(w, http.StatusOK, tickets)
}
