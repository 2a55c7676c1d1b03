package domain

import "time"

// TicketStatus статус оплаты билета
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType тип билета
type TicketType struct {
	ID            int64
	Name          string
	Price         int
	IsRemote      bool
	IncludesHotel bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ticket билет, привязанный к регистрации пользователя
type Ticket struct {
	ID           int64
	EnrollmentID int64
	TicketTypeID int64
	Status       TicketStatus

	TicketType TicketType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllowsHotelBooking возвращает true, если по билету можно бронировать номер:
// билет оплачен, очный и включает проживание
func (t *Ticket) AllowsHotelBooking() bool {
	return t.Status == TicketStatusPaid &&
		!t.TicketType.IsRemote &&
		t.TicketType.IncludesHotel
}

// BlocksHotelCatalog возвращает true, если каталог отелей закрыт для владельца билета:
// билет только зарезервирован, онлайн или без проживания
func (t *Ticket) BlocksHotelCatalog() bool {
	return t.Status == TicketStatusReserved ||
		t.TicketType.IsRemote ||
		!t.TicketType.IncludesHotel
}
