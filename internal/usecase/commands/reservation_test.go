//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"residence-api/internal/domain/reservation"
	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/clock"
	"residence-api/internal/usecase/commands"
	"residence-api/tests/common/builder"
	commandsmock "residence-api/tests/mock/commands"
	queriesmock "residence-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// passthroughTxManager runs the callback directly; admission ordering is what
// matters at this level, not transaction mechanics.
type passthroughTxManager struct{}

func (passthroughTxManager) Within(ctx context.Context, fn func(ctx context.Context, tx sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	reservationRepo  *commandsmock.MockReservationRepository
	amenityRepo      *commandsmock.MockAmenityRepository
	idempotencyRepo  *commandsmock.MockIdempotencyRepository
	notificationRepo *commandsmock.MockNotificationRepository
	reservationViews *queriesmock.MockReservationQueries
	clock            *clock.MockClock
	commands         commands.ReservationCommands
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservationRepo = commandsmock.NewMockReservationRepository(s.ctrl)
	s.amenityRepo = commandsmock.NewMockAmenityRepository(s.ctrl)
	s.idempotencyRepo = commandsmock.NewMockIdempotencyRepository(s.ctrl)
	s.notificationRepo = commandsmock.NewMockNotificationRepository(s.ctrl)
	s.reservationViews = queriesmock.NewMockReservationQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	s.commands = commands.NewReservationCommands(
		s.reservationRepo,
		s.amenityRepo,
		s.idempotencyRepo,
		s.notificationRepo,
		s.reservationViews,
		passthroughTxManager{},
		s.clock,
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReservationCommandsTestSuite) expectFreshKey() {
	s.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), "POST /reservations", gomock.Any(), gomock.Any()).
		Return(true, nil)
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("admits reservation through the full check sequence", func() {
		s.SetupTest()
		userID := uuid.New()
		b := builder.NewReservationBuilder().WithUserID(userID)
		req := b.BuildCreateRequestDTO()
		amenitySnap := builder.NewAmenityBuilder().BuildSnapshot()
		amenitySnap.ID = req.AmenityID
		reservationID := uuid.New()
		view := b.BuildViewQuery()

		s.expectFreshKey()
		s.amenityRepo.EXPECT().FindSnapshot(gomock.Any(), req.AmenityID).Return(amenitySnap, nil)

		// user lock before amenity lock
		gomock.InOrder(
			s.reservationRepo.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), "user:"+userID.String()).Return(nil),
			s.reservationRepo.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), "amenity:"+req.AmenityID.String()).Return(nil),
		)
		s.reservationRepo.EXPECT().
			ExistsUserOverlap(gomock.Any(), gomock.Any(), userID, req.StartTime, req.EndTime).
			Return(false, nil)
		s.reservationRepo.EXPECT().
			ExistsSameDay(gomock.Any(), gomock.Any(), userID, req.AmenityID,
				time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)).
			Return(false, nil)
		s.reservationRepo.EXPECT().
			CountOverlapping(gomock.Any(), gomock.Any(), req.AmenityID, req.StartTime, req.EndTime).
			Return(int64(0), nil)
		s.reservationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
				assert.Equal(s.T(), userID, res.UserID())
				assert.Equal(s.T(), req.AmenityID, res.AmenityID())
				assert.True(s.T(), res.IsConfirmed())
				return reservationID, nil
			})
		s.notificationRepo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "reservation_created", gomock.Any(), s.clock.Now()).
			Return(nil)
		s.idempotencyRepo.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Any(), gomock.Any(), userID, reservationID).
			Return(nil)
		s.reservationViews.EXPECT().GetByID(gomock.Any(), reservationID).Return(view, nil)

		result, err := s.commands.Create(context.Background(), req, userID, uuid.New())
		require.NoError(s.T(), err)
		assert.False(s.T(), result.IsReplayed)
		assert.Equal(s.T(), view, result.Reservation)
	})

	s.Run("rejects unknown amenity", func() {
		s.SetupTest()
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		s.expectFreshKey()
		s.amenityRepo.EXPECT().
			FindSnapshot(gomock.Any(), req.AmenityID).
			Return(nil, infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound))

		_, err := s.commands.Create(context.Background(), req, uuid.New(), uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrAmenityNotFound)
	})

	s.Run("rejects slot longer than the amenity limit", func() {
		s.SetupTest()
		req := builder.NewReservationBuilder().WithDuration(3 * time.Hour).BuildCreateRequestDTO()
		amenitySnap := builder.NewAmenityBuilder().BuildSnapshot() // 120 min limit
		amenitySnap.ID = req.AmenityID

		s.expectFreshKey()
		s.amenityRepo.EXPECT().FindSnapshot(gomock.Any(), req.AmenityID).Return(amenitySnap, nil)

		_, err := s.commands.Create(context.Background(), req, uuid.New(), uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrDurationExceeded)
		assert.Contains(s.T(), err.Error(), "may not exceed 120 minutes")
	})

	s.Run("negative duration passes the limit check and fails as invalid range", func() {
		s.SetupTest()
		req := builder.NewReservationBuilder().WithDuration(-time.Hour).BuildCreateRequestDTO()
		amenitySnap := builder.NewAmenityBuilder().BuildSnapshot()
		amenitySnap.ID = req.AmenityID

		s.expectFreshKey()
		s.amenityRepo.EXPECT().FindSnapshot(gomock.Any(), req.AmenityID).Return(amenitySnap, nil)

		_, err := s.commands.Create(context.Background(), req, uuid.New(), uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrInvalidTimeRange)
	})

	s.Run("rejects zero-length slot", func() {
		s.SetupTest()
		req := builder.NewReservationBuilder().WithDuration(0).BuildCreateRequestDTO()
		amenitySnap := builder.NewAmenityBuilder().BuildSnapshot()
		amenitySnap.ID = req.AmenityID

		s.expectFreshKey()
		s.amenityRepo.EXPECT().FindSnapshot(gomock.Any(), req.AmenityID).Return(amenitySnap, nil)

		_, err := s.commands.Create(context.Background(), req, uuid.New(), uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrInvalidTimeRange)
	})

	s.Run("rejects overlap with the user's own reservation", func() {
		s.SetupTest()
		userID := uuid.New()
		req := builder.NewReservationBuilder().WithUserID(userID).BuildCreateRequestDTO()
		amenitySnap := builder.NewAmenityBuilder().BuildSnapshot()
		amenitySnap.ID = req.AmenityID

		s.expectFreshKey()
		s.amenityRepo.EXPECT().FindSnapshot(gomock.Any(), req.AmenityID).Return(amenitySnap, nil)
		s.reservationRepo.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.reservationRepo.EXPECT().
			ExistsUserOverlap(gomock.Any(), gomock.Any(), userID, req.StartTime, req.EndTime).
			Return(true, nil)

		_, err := s.commands.Create(context.Background(), req, userID, uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrUserTimeConflict)
	})

	s.Run("rejects second booking of the same amenity on the same day", func() {
		s.SetupTest()
		userID := uuid.New()
		req := builder.NewReservationBuilder().WithUserID(userID).BuildCreateRequestDTO()
		amenitySnap := builder.NewAmenityBuilder().BuildSnapshot()
		amenitySnap.ID = req.AmenityID

		s.expectFreshKey()
		s.amenityRepo.EXPECT().FindSnapshot(gomock.Any(), req.AmenityID).Return(amenitySnap, nil)
		s.reservationRepo.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.reservationRepo.EXPECT().
			ExistsUserOverlap(gomock.Any(), gomock.Any(), userID, req.StartTime, req.EndTime).
			Return(false, nil)
		s.reservationRepo.EXPECT().
			ExistsSameDay(gomock.Any(), gomock.Any(), userID, req.AmenityID, gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := s.commands.Create(context.Background(), req, userID, uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrDuplicateAmenityPerDay)
	})

	s.Run("rejects when capacity is exhausted", func() {
		s.SetupTest()
		userID := uuid.New()
		req := builder.NewReservationBuilder().WithUserID(userID).BuildCreateRequestDTO()
		amenitySnap := builder.NewAmenityBuilder().WithCapacity(2).BuildSnapshot()
		amenitySnap.ID = req.AmenityID

		s.expectFreshKey()
		s.amenityRepo.EXPECT().FindSnapshot(gomock.Any(), req.AmenityID).Return(amenitySnap, nil)
		s.reservationRepo.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.reservationRepo.EXPECT().
			ExistsUserOverlap(gomock.Any(), gomock.Any(), userID, req.StartTime, req.EndTime).
			Return(false, nil)
		s.reservationRepo.EXPECT().
			ExistsSameDay(gomock.Any(), gomock.Any(), userID, req.AmenityID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.reservationRepo.EXPECT().
			CountOverlapping(gomock.Any(), gomock.Any(), req.AmenityID, req.StartTime, req.EndTime).
			Return(int64(2), nil)

		_, err := s.commands.Create(context.Background(), req, userID, uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrCapacityFull)
	})
}

func (s *ReservationCommandsTestSuite) TestCreateIdempotency() {
	s.Run("replays a completed request", func() {
		s.SetupTest()
		userID := uuid.New()
		key := uuid.New()
		req := builder.NewReservationBuilder().WithUserID(userID).BuildCreateRequestDTO()
		resultID := uuid.New()
		view := builder.NewReservationBuilder().WithUserID(userID).BuildViewQuery()

		s.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), key, userID, "POST /reservations", gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.idempotencyRepo.EXPECT().
			Get(gomock.Any(), key, userID).
			Return(&commands.IdempotencyRecord{
				Key:                 key,
				UserID:              userID,
				Status:              "completed",
				RequestHash:         requestHash(req),
				ResultReservationID: &resultID,
			}, nil)
		s.reservationViews.EXPECT().GetByID(gomock.Any(), resultID).Return(view, nil)

		result, err := s.commands.Create(context.Background(), req, userID, key)
		require.NoError(s.T(), err)
		assert.True(s.T(), result.IsReplayed)
		assert.Equal(s.T(), view, result.Reservation)
	})

	s.Run("reports in-progress for a processing key with the same payload", func() {
		s.SetupTest()
		userID := uuid.New()
		key := uuid.New()
		req := builder.NewReservationBuilder().WithUserID(userID).BuildCreateRequestDTO()

		s.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), key, userID, "POST /reservations", gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.idempotencyRepo.EXPECT().
			Get(gomock.Any(), key, userID).
			Return(&commands.IdempotencyRecord{
				Key:         key,
				UserID:      userID,
				Status:      "processing",
				RequestHash: requestHash(req),
			}, nil)

		_, err := s.commands.Create(context.Background(), req, userID, key)
		require.ErrorIs(s.T(), err, commands.ErrIdempotencyInProgress)
	})

	s.Run("reclaims an expired key and admits the request as fresh", func() {
		s.SetupTest()
		userID := uuid.New()
		key := uuid.New()
		b := builder.NewReservationBuilder().WithUserID(userID)
		req := b.BuildCreateRequestDTO()
		amenitySnap := builder.NewAmenityBuilder().BuildSnapshot()
		amenitySnap.ID = req.AmenityID
		reservationID := uuid.New()
		view := b.BuildViewQuery()

		s.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), key, userID, "POST /reservations", gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.idempotencyRepo.EXPECT().
			Get(gomock.Any(), key, userID).
			Return(nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound))
		s.idempotencyRepo.EXPECT().
			ReclaimExpired(gomock.Any(), key, userID, requestHash(req), s.clock.Now().Add(24*time.Hour)).
			Return(true, nil)

		s.amenityRepo.EXPECT().FindSnapshot(gomock.Any(), req.AmenityID).Return(amenitySnap, nil)
		s.reservationRepo.EXPECT().AcquireLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.reservationRepo.EXPECT().
			ExistsUserOverlap(gomock.Any(), gomock.Any(), userID, req.StartTime, req.EndTime).
			Return(false, nil)
		s.reservationRepo.EXPECT().
			ExistsSameDay(gomock.Any(), gomock.Any(), userID, req.AmenityID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.reservationRepo.EXPECT().
			CountOverlapping(gomock.Any(), gomock.Any(), req.AmenityID, req.StartTime, req.EndTime).
			Return(int64(0), nil)
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservationID, nil)
		s.notificationRepo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "reservation_created", gomock.Any(), gomock.Any()).
			Return(nil)
		s.idempotencyRepo.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Any(), key, userID, reservationID).
			Return(nil)
		s.reservationViews.EXPECT().GetByID(gomock.Any(), reservationID).Return(view, nil)

		result, err := s.commands.Create(context.Background(), req, userID, key)
		require.NoError(s.T(), err)
		assert.False(s.T(), result.IsReplayed)
		assert.Equal(s.T(), view, result.Reservation)
	})

	s.Run("reports in-progress when a concurrent request reclaims the expired key first", func() {
		s.SetupTest()
		userID := uuid.New()
		key := uuid.New()
		req := builder.NewReservationBuilder().WithUserID(userID).BuildCreateRequestDTO()

		s.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), key, userID, "POST /reservations", gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.idempotencyRepo.EXPECT().
			Get(gomock.Any(), key, userID).
			Return(nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound))
		s.idempotencyRepo.EXPECT().
			ReclaimExpired(gomock.Any(), key, userID, requestHash(req), gomock.Any()).
			Return(false, nil)

		_, err := s.commands.Create(context.Background(), req, userID, key)
		require.ErrorIs(s.T(), err, commands.ErrIdempotencyInProgress)
	})

	s.Run("rejects key reuse with a different payload", func() {
		s.SetupTest()
		userID := uuid.New()
		key := uuid.New()
		req := builder.NewReservationBuilder().WithUserID(userID).BuildCreateRequestDTO()

		s.idempotencyRepo.EXPECT().
			TryInsert(gomock.Any(), key, userID, "POST /reservations", gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.idempotencyRepo.EXPECT().
			Get(gomock.Any(), key, userID).
			Return(&commands.IdempotencyRecord{
				Key:         key,
				UserID:      userID,
				Status:      "processing",
				RequestHash: "different-hash",
			}, nil)

		_, err := s.commands.Create(context.Background(), req, userID, key)
		require.ErrorIs(s.T(), err, commands.ErrIdempotencyConflict)
	})
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	s.Run("cancels an owned reservation and enqueues a notification", func() {
		s.SetupTest()
		userID := uuid.New()
		b := builder.NewReservationBuilder().WithUserID(userID)
		snap := b.BuildSnapshot()
		view := b.AsCancelled().BuildViewQuery()

		s.reservationRepo.EXPECT().FindSnapshot(gomock.Any(), snap.ID).Return(snap, nil)
		s.reservationRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, reservation.StatusCancelled).
			Return(nil)
		s.notificationRepo.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "reservation_cancelled", gomock.Any(), gomock.Any()).
			Return(nil)
		s.reservationViews.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)

		result, err := s.commands.Cancel(context.Background(), snap.ID, userID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), "cancelled", result.Status)
	})

	s.Run("rejects cancellation by a non-owner", func() {
		s.SetupTest()
		snap := builder.NewReservationBuilder().BuildSnapshot()

		s.reservationRepo.EXPECT().FindSnapshot(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.commands.Cancel(context.Background(), snap.ID, uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrNotOwner)
	})

	s.Run("reports missing reservation", func() {
		s.SetupTest()
		reservationID := uuid.New()

		s.reservationRepo.EXPECT().
			FindSnapshot(gomock.Any(), reservationID).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.commands.Cancel(context.Background(), reservationID, uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrReservationNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestHide() {
	s.Run("hides an owned reservation without touching status", func() {
		s.SetupTest()
		userID := uuid.New()
		b := builder.NewReservationBuilder().WithUserID(userID)
		snap := b.BuildSnapshot()
		view := b.AsHidden().BuildViewQuery()

		s.reservationRepo.EXPECT().FindSnapshot(gomock.Any(), snap.ID).Return(snap, nil)
		s.reservationRepo.EXPECT().
			UpdateVisibility(gomock.Any(), gomock.Any(), snap.ID, true).
			Return(nil)
		s.reservationViews.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)

		result, err := s.commands.Hide(context.Background(), snap.ID, userID)
		require.NoError(s.T(), err)
		assert.True(s.T(), result.HiddenFromUser)
		assert.Equal(s.T(), "confirmed", result.Status)
	})

	s.Run("rejects hiding another user's reservation", func() {
		s.SetupTest()
		snap := builder.NewReservationBuilder().BuildSnapshot()

		s.reservationRepo.EXPECT().FindSnapshot(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.commands.Hide(context.Background(), snap.ID, uuid.New())
		require.ErrorIs(s.T(), err, commands.ErrNotOwner)
	})
}

func (s *ReservationCommandsTestSuite) TestPurgeCancelled() {
	s.Run("deletes finished cancelled reservations", func() {
		s.SetupTest()
		before := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		s.reservationRepo.EXPECT().DeleteCancelledBefore(gomock.Any(), before).Return(int64(3), nil)

		deleted, err := s.commands.PurgeCancelled(context.Background(), before)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), int64(3), deleted)
	})
}

func requestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
