package hotels

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	enrollmentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/enrollment"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	ticketRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-HotelBookingService/pkg/apperror"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type mockEnrollmentRepo struct{ mock.Mock }

func (m *mockEnrollmentRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID)
	if e := args.Get(0); e != nil {
		return e.(*domain.Enrollment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTicketRepo struct{ mock.Mock }

func (m *mockTicketRepo) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	args := m.Called(ctx, enrollmentID)
	if t := args.Get(0); t != nil {
		return t.(*domain.Ticket), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockHotelRepo struct{ mock.Mock }

func (m *mockHotelRepo) GetAll(ctx context.Context) ([]*domain.Hotel, error) {
	args := m.Called(ctx)
	if h := args.Get(0); h != nil {
		return h.([]*domain.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHotelRepo) GetByIDWithRooms(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelID)
	if h := args.Get(0); h != nil {
		return h.(*domain.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixture struct {
	enrollments *mockEnrollmentRepo
	tickets     *mockTicketRepo
	hotels      *mockHotelRepo
	svc         *Service
}

func newFixture() *fixture {
	f := &fixture{
		enrollments: &mockEnrollmentRepo{},
		tickets:     &mockTicketRepo{},
		hotels:      &mockHotelRepo{},
	}
	f.svc = NewService(f.enrollments, f.tickets, f.hotels, logger.Discard())
	return f
}

func (f *fixture) withTicket(ticket *domain.Ticket) {
	f.enrollments.On("GetByUserID", mock.Anything, int64(5)).Return(&domain.Enrollment{ID: 3, UserID: 5}, nil)
	f.tickets.On("GetByEnrollmentID", mock.Anything, int64(3)).Return(ticket, nil)
}

func paidTicket() *domain.Ticket {
	return &domain.Ticket{ID: 11, Status: domain.TicketStatusPaid, TicketType: domain.TicketType{IncludesHotel: true}}
}

func TestCheckBusinessRules(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *fixture)
		wantErr  error
		wantKind apperror.Kind
	}{
		{
			name:  "eligible",
			setup: func(f *fixture) { f.withTicket(paidTicket()) },
		},
		{
			name: "no enrollment",
			setup: func(f *fixture) {
				f.enrollments.On("GetByUserID", mock.Anything, int64(5)).Return(nil, enrollmentRepo.ErrEnrollmentNotFound)
			},
			wantErr:  ErrEnrollmentNotFound,
			wantKind: apperror.KindNotFound,
		},
		{
			name: "no ticket",
			setup: func(f *fixture) {
				f.enrollments.On("GetByUserID", mock.Anything, int64(5)).Return(&domain.Enrollment{ID: 3}, nil)
				f.tickets.On("GetByEnrollmentID", mock.Anything, int64(3)).Return(nil, ticketRepo.ErrTicketNotFound)
			},
			wantErr:  ErrTicketNotFound,
			wantKind: apperror.KindNotFound,
		},
		{
			name: "reserved ticket",
			setup: func(f *fixture) {
				f.withTicket(&domain.Ticket{Status: domain.TicketStatusReserved, TicketType: domain.TicketType{IncludesHotel: true}})
			},
			wantErr:  ErrPaymentRequired,
			wantKind: apperror.KindPaymentRequired,
		},
		{
			name: "remote ticket",
			setup: func(f *fixture) {
				f.withTicket(&domain.Ticket{Status: domain.TicketStatusPaid, TicketType: domain.TicketType{IsRemote: true, IncludesHotel: true}})
			},
			wantErr:  ErrPaymentRequired,
			wantKind: apperror.KindPaymentRequired,
		},
		{
			name: "ticket without hotel",
			setup: func(f *fixture) {
				f.withTicket(&domain.Ticket{Status: domain.TicketStatusPaid})
			},
			wantErr:  ErrPaymentRequired,
			wantKind: apperror.KindPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			err := f.svc.CheckBusinessRules(context.Background(), 5)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestGetAllHotels(t *testing.T) {
	f := newFixture()
	f.withTicket(paidTicket())
	f.hotels.On("GetAll", mock.Anything).Return([]*domain.Hotel{
		{ID: 1, Name: "Driven Resort", Image: "img1"},
		{ID: 2, Name: "Driven Palace", Image: "img2"},
	}, nil)

	hotels, err := f.svc.GetAllHotels(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Driven Resort", hotels[0].Name)
	assert.Equal(t, int64(2), hotels[1].ID)
}

func TestGetAllHotels_Empty(t *testing.T) {
	f := newFixture()
	f.withTicket(paidTicket())
	f.hotels.On("GetAll", mock.Anything).Return([]*domain.Hotel{}, nil)

	_, err := f.svc.GetAllHotels(context.Background(), 5)

	assert.ErrorIs(t, err, ErrHotelsNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestGetAllHotels_GateFailsFirst(t *testing.T) {
	f := newFixture()
	f.withTicket(&domain.Ticket{Status: domain.TicketStatusReserved, TicketType: domain.TicketType{IncludesHotel: true}})

	_, err := f.svc.GetAllHotels(context.Background(), 5)

	assert.ErrorIs(t, err, ErrPaymentRequired)
	f.hotels.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestGetAllHotels_RepositoryError(t *testing.T) {
	f := newFixture()
	f.withTicket(paidTicket())
	f.hotels.On("GetAll", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := f.svc.GetAllHotels(context.Background(), 5)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetRoomsByHotelID(t *testing.T) {
	f := newFixture()
	f.withTicket(paidTicket())
	f.hotels.On("GetByIDWithRooms", mock.Anything, int64(1)).Return(&domain.Hotel{
		ID:   1,
		Name: "Driven Resort",
		Rooms: []*domain.Room{
			{ID: 10, Name: "101", Capacity: 3, HotelID: 1, BookedCount: 1},
			{ID: 11, Name: "102", Capacity: 1, HotelID: 1},
		},
	}, nil)

	hotel, err := f.svc.GetRoomsByHotelID(context.Background(), 5, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), hotel.ID)
	require.Len(t, hotel.Rooms, 2)
	assert.Equal(t, 1, hotel.Rooms[0].BookedCount)
	assert.Equal(t, "102", hotel.Rooms[1].Name)
}

func TestGetRoomsByHotelID_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		hotelID int64
		setup   func(f *fixture)
	}{
		{
			name:    "missing hotel",
			hotelID: 99,
			setup: func(f *fixture) {
				f.hotels.On("GetByIDWithRooms", mock.Anything, int64(99)).Return(nil, hotelRepo.ErrHotelNotFound)
			},
		},
		{
			name:    "hotel without rooms",
			hotelID: 2,
			setup: func(f *fixture) {
				f.hotels.On("GetByIDWithRooms", mock.Anything, int64(2)).Return(&domain.Hotel{ID: 2, Rooms: []*domain.Room{}}, nil)
			},
		},
		{
			name:    "non positive id",
			hotelID: 0,
			setup:   func(f *fixture) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.withTicket(paidTicket())
			tt.setup(f)

			_, err := f.svc.GetRoomsByHotelID(context.Background(), 5, tt.hotelID)

			assert.ErrorIs(t, err, ErrHotelNotFound)
			assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
		})
	}
}
