package enrollment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, user_id, name, created_at, updated_at FROM enrollments WHERE user_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "created_at", "updated_at"}).
			AddRow(int64(3), int64(7), "Ivan", now, now))

	repo := NewRepository(db)
	e, err := repo.GetByUserID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), e.ID)
	assert.Equal(t, int64(7), e.UserID)
	assert.Equal(t, "Ivan", e.Name)
	assert.Equal(t, now, e.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUserID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM enrollments`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "created_at", "updated_at"}))

	_, err = NewRepository(db).GetByUserID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUserID_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM enrollments`).WillReturnError(errors.New("connection refused"))

	_, err = NewRepository(db).GetByUserID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrScanRow)
	assert.Contains(t, err.Error(), "connection refused")
}
