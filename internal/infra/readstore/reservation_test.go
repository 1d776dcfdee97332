//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReservationByIDRow), args.Error(1)
}

func (m *MockReservationViewQueries) GetUserReservations(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetUserReservationsRow, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlc.GetUserReservationsRow), args.Error(1)
}

func (m *MockReservationViewQueries) GetAmenityReservations(ctx context.Context, db sqlc.DBTX, amenityID uuid.UUID) ([]sqlc.GetAmenityReservationsRow, error) {
	args := m.Called(ctx, db, amenityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlc.GetAmenityReservationsRow), args.Error(1)
}

func (m *MockReservationViewQueries) GetAmenityReservationsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAmenityReservationsInRangeParams) ([]sqlc.GetAmenityReservationsInRangeRow, error) {
	args := m.Called(ctx, db, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlc.GetAmenityReservationsInRangeRow), args.Error(1)
}

func reservationViewRow() sqlc.GetReservationByIDRow {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return sqlc.GetReservationByIDRow{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		AmenityID:       uuid.New(),
		StartTime:       pgconv.TimeToPgtype(start),
		EndTime:         pgconv.TimeToPgtype(start.Add(time.Hour)),
		Status:          "confirmed",
		AmenityName:     "Gym",
		UserEmail:       "tenant@example.com",
		UserDisplayName: "Resident tenant@example.com",
	}
}

func TestFindByID(t *testing.T) {
	row := reservationViewRow()

	tests := []struct {
		name       string
		mockReturn sqlc.GetReservationByIDRow
		mockError  error
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			mockReturn: row,
			mockError:  nil,
			wantError:  false,
		},
		{
			name:       "reservation not found",
			mockReturn: sqlc.GetReservationByIDRow{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			mockReturn: sqlc.GetReservationByIDRow{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationViewQueries)
			mockQueries.On("GetReservationByID", mock.Anything, mock.Anything, row.ID).Return(tt.mockReturn, tt.mockError)

			readStore := &ReservationReadStore{queries: mockQueries}

			view, err := readStore.FindByID(context.Background(), row.ID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, view)
				assert.Equal(t, row.ID, view.ID)
				assert.Equal(t, "Gym", view.AmenityName)
				assert.Equal(t, "tenant@example.com", view.UserEmail)
				assert.Equal(t, row.StartTime.Time, view.StartTime)
				assert.Nil(t, view.AmenityDescription)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByUserID(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	rows := []sqlc.GetUserReservationsRow{
		{
			ID:          uuid.New(),
			UserID:      userID,
			AmenityID:   uuid.New(),
			StartTime:   pgconv.TimeToPgtype(start),
			EndTime:     pgconv.TimeToPgtype(start.Add(time.Hour)),
			Status:      "confirmed",
			AmenityName: "Gym",
		},
		{
			ID:                 uuid.New(),
			UserID:             userID,
			AmenityID:          uuid.New(),
			StartTime:          pgconv.TimeToPgtype(start.Add(24 * time.Hour)),
			EndTime:            pgconv.TimeToPgtype(start.Add(25 * time.Hour)),
			Status:             "confirmed",
			AmenityName:        "Pool",
			AmenityDescription: pgconv.StringToPgtype("Heated pool"),
		},
	}

	t.Run("success - maps all rows", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetUserReservations", mock.Anything, mock.Anything, userID).Return(rows, nil)

		readStore := &ReservationReadStore{queries: mockQueries}

		items, err := readStore.FindByUserID(context.Background(), userID)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "Gym", items[0].AmenityName)
		assert.Nil(t, items[0].AmenityDescription)
		assert.Equal(t, "Pool", items[1].AmenityName)
		if assert.NotNil(t, items[1].AmenityDescription) {
			assert.Equal(t, "Heated pool", *items[1].AmenityDescription)
		}
	})

	t.Run("success - empty result", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetUserReservations", mock.Anything, mock.Anything, userID).Return([]sqlc.GetUserReservationsRow{}, nil)

		readStore := &ReservationReadStore{queries: mockQueries}

		items, err := readStore.FindByUserID(context.Background(), userID)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetUserReservations", mock.Anything, mock.Anything, userID).Return(nil, assert.AnError)

		readStore := &ReservationReadStore{queries: mockQueries}

		items, err := readStore.FindByUserID(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, items)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestFindByAmenityIDInRange(t *testing.T) {
	amenityID := uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 31)

	t.Run("success - passes the window through", func(t *testing.T) {
		row := sqlc.GetAmenityReservationsInRangeRow{
			ID:              uuid.New(),
			UserID:          uuid.New(),
			AmenityID:       amenityID,
			StartTime:       pgconv.TimeToPgtype(from.Add(10 * time.Hour)),
			EndTime:         pgconv.TimeToPgtype(from.Add(11 * time.Hour)),
			Status:          "confirmed",
			UserDisplayName: "Resident tenant@example.com",
		}

		expectedParams := sqlc.GetAmenityReservationsInRangeParams{
			AmenityID: amenityID,
			StartTime: pgconv.TimeToPgtype(from),
			EndTime:   pgconv.TimeToPgtype(to),
		}

		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetAmenityReservationsInRange", mock.Anything, mock.Anything, expectedParams).
			Return([]sqlc.GetAmenityReservationsInRangeRow{row}, nil)

		readStore := &ReservationReadStore{queries: mockQueries}

		items, err := readStore.FindByAmenityIDInRange(context.Background(), amenityID, from, to)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, row.ID, items[0].ID)
		assert.Equal(t, "Resident tenant@example.com", items[0].UserDisplayName)

		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetAmenityReservationsInRange", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		readStore := &ReservationReadStore{queries: mockQueries}

		items, err := readStore.FindByAmenityIDInRange(context.Background(), amenityID, from, to)
		assert.Error(t, err)
		assert.Nil(t, items)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
