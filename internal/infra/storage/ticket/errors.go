package ticket

import "errors"

var (
	// ErrTicketNotFound возвращается, когда у регистрации нет билета
	ErrTicketNotFound = errors.New("ticket.repository: ticket not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ticket.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ticket.repository: failed to scan row")
)
