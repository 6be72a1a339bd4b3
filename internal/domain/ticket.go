package domain

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PriceCents    int64  `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

type Ticket struct {
	ID           int64        `json:"id"`
	EnrollmentID int64        `json:"enrollmentId"`
	TicketTypeID int64        `json:"ticketTypeId"`
	Status       TicketStatus `json:"status"`
	TicketType   TicketType   `json:"TicketType"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// EntitlesToHotel is true for a paid, in-person ticket whose type includes lodging.
func (t *Ticket) EntitlesToHotel() bool {
	if t == nil {
		return false
	}
	return t.Status == TicketStatusPaid && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
