package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicket_AllowsHotelBooking(t *testing.T) {
	tests := []struct {
		name   string
		ticket Ticket
		want   bool
	}{
		{
			name:   "paid in-person with hotel",
			ticket: Ticket{Status: TicketStatusPaid, TicketType: TicketType{IncludesHotel: true}},
			want:   true,
		},
		{
			name:   "reserved",
			ticket: Ticket{Status: TicketStatusReserved, TicketType: TicketType{IncludesHotel: true}},
			want:   false,
		},
		{
			name:   "unknown status",
			ticket: Ticket{Status: "REFUNDED", TicketType: TicketType{IncludesHotel: true}},
			want:   false,
		},
		{
			name:   "paid remote",
			ticket: Ticket{Status: TicketStatusPaid, TicketType: TicketType{IsRemote: true, IncludesHotel: true}},
			want:   false,
		},
		{
			name:   "paid without hotel",
			ticket: Ticket{Status: TicketStatusPaid, TicketType: TicketType{}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ticket.AllowsHotelBooking())
		})
	}
}

func TestTicket_BlocksHotelCatalog(t *testing.T) {
	tests := []struct {
		name   string
		ticket Ticket
		want   bool
	}{
		{
			name:   "paid in-person with hotel",
			ticket: Ticket{Status: TicketStatusPaid, TicketType: TicketType{IncludesHotel: true}},
			want:   false,
		},
		{
			name:   "reserved",
			ticket: Ticket{Status: TicketStatusReserved, TicketType: TicketType{IncludesHotel: true}},
			want:   true,
		},
		{
			name:   "remote",
			ticket: Ticket{Status: TicketStatusPaid, TicketType: TicketType{IsRemote: true, IncludesHotel: true}},
			want:   true,
		},
		{
			name:   "without hotel",
			ticket: Ticket{Status: TicketStatusPaid},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ticket.BlocksHotelCatalog())
		})
	}
}
