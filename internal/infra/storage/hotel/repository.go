package hotel

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

// Repository репозиторий отелей и номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все отели, отсортированные по id
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"image",
		"created_at",
		"updated_at",
	).
		From("hotels").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0)
	for rows.Next() {
		var h domain.Hotel
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&h.ID, &h.Name, &h.Image, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan hotel: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time
		hotels = append(hotels, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows iteration: %v", ErrScanRow, err)
	}

	return hotels, nil
}

// GetByIDWithRooms получает отель вместе с номерами.
// Для каждого номера считается текущее количество бронирований.
func (r *Repository) GetByIDWithRooms(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"image",
		"created_at",
		"updated_at",
	).
		From("hotels").
		Where(squirrel.Eq{"id": hotelID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithRooms - build hotel query: %v", ErrBuildQuery, err)
	}

	var h domain.Hotel
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.Name, &h.Image, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithRooms - scan hotel: %v", ErrScanRow, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	rooms, err := r.getRoomsByHotelID(ctx, executor, hotelID)
	if err != nil {
		return nil, err
	}
	h.Rooms = rooms

	return &h, nil
}

func (r *Repository) getRoomsByHotelID(ctx context.Context, executor DBExecutor, hotelID int64) ([]*domain.Room, error) {
	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.name",
		"r.capacity",
		"r.hotel_id",
		"r.created_at",
		"r.updated_at",
		"COUNT(b.id) AS booked_count",
	).
		From("rooms r").
		LeftJoin("bookings b ON b.room_id = r.id").
		Where(squirrel.Eq{"r.hotel_id": hotelID}).
		GroupBy("r.id").
		OrderBy("r.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithRooms - build rooms query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithRooms - execute rooms query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.HotelID,
			&createdAt,
			&updatedAt,
			&room.BookedCount,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByIDWithRooms - scan room: %v", ErrScanRow, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithRooms - rows iteration: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetRoomWithBookings получает номер вместе со всеми его бронированиями.
// Внутри транзакции строка номера блокируется (FOR UPDATE), поэтому конкурентные
// бронирования одного номера выполняются последовательно.
func (r *Repository) GetRoomWithBookings(ctx context.Context, roomID int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	roomQuery := psqlbuilder.Select(
		"id",
		"name",
		"capacity",
		"hotel_id",
		"created_at",
		"updated_at",
	).
		From("rooms").
		Where(squirrel.Eq{"id": roomID})

	if dbmetrics.IsInTransaction(ctx) {
		roomQuery = roomQuery.Suffix("FOR UPDATE")
	}

	query, args, err := roomQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomWithBookings - build room query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomWithBookings - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	query, args, err = psqlbuilder.Select(
		"id",
		"user_id",
		"room_id",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomWithBookings - build bookings query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomWithBookings - execute bookings query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	room.Bookings = make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		var bCreatedAt, bUpdatedAt sql.NullTime

		if err := rows.Scan(&b.ID, &b.UserID, &b.RoomID, &bCreatedAt, &bUpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetRoomWithBookings - scan booking: %v", ErrScanRow, err)
		}

		b.CreatedAt = bCreatedAt.Time
		b.UpdatedAt = bUpdatedAt.Time
		room.Bookings = append(room.Bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomWithBookings - rows iteration: %v", ErrScanRow, err)
	}

	room.BookedCount = len(room.Bookings)

	return &room, nil
}
