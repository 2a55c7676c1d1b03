package ticket

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

// Repository репозиторий билетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория билетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEnrollmentID получает билет регистрации вместе с его типом.
// Если билетов несколько, возвращается первый по id.
func (r *Repository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.enrollment_id",
		"t.ticket_type_id",
		"t.status",
		"t.created_at",
		"t.updated_at",
		"tt.id",
		"tt.name",
		"tt.price",
		"tt.is_remote",
		"tt.includes_hotel",
		"tt.created_at",
		"tt.updated_at",
	).
		From("tickets t").
		Join("ticket_types tt ON tt.id = t.ticket_type_id").
		Where(squirrel.Eq{"t.enrollment_id": enrollmentID}).
		OrderBy("t.id").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEnrollmentID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Ticket
	var createdAt, updatedAt, typeCreatedAt, typeUpdatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.EnrollmentID,
		&t.TicketTypeID,
		&t.Status,
		&createdAt,
		&updatedAt,
		&t.TicketType.ID,
		&t.TicketType.Name,
		&t.TicketType.Price,
		&t.TicketType.IsRemote,
		&t.TicketType.IncludesHotel,
		&typeCreatedAt,
		&typeUpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEnrollmentID - scan ticket: %v", ErrScanRow, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	t.TicketType.CreatedAt = typeCreatedAt.Time
	t.TicketType.UpdatedAt = typeUpdatedAt.Time

	return &t, nil
}
