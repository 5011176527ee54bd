package models

import (
	"testing"
)

func TestTicket_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ticket  Ticket
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid ticket",
			ticket: Ticket{
				Code:   "IZN-ev1-1700000000-a1b2c3d4",
				Status: TicketActive,
			},
			wantErr: false,
		},
		{
			name: "invalid code - empty",
			ticket: Ticket{
				Code:   "",
				Status: TicketActive,
			},
			wantErr: true,
			errMsg:  "ticket code is required",
		},
		{
			name: "invalid status",
			ticket: Ticket{
				Code:   "IZN-ev1-1700000000-a1b2c3d4",
				Status: "expired",
			},
			wantErr: true,
			errMsg:  "invalid ticket status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ticket.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Ticket.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Ticket.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestTicket_CanBeUsed(t *testing.T) {
	tests := []struct {
		name   string
		status TicketStatus
		want   bool
	}{
		{name: "active ticket", status: TicketActive, want: true},
		{name: "used ticket", status: TicketUsed, want: false},
		{name: "revoked ticket", status: TicketRevoked, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := Ticket{Status: tt.status}
			if got := ticket.CanBeUsed(); got != tt.want {
				t.Errorf("Ticket.CanBeUsed() = %v, want %v", got, tt.want)
			}
		})
	}
}
