package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"residence-api/internal/domain/reservation"
	reqdto "residence-api/internal/handler/dto/request"
	"residence-api/internal/infra"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/pkg/clock"
	"residence-api/internal/pkg/errs"
	"residence-api/internal/usecase/queries"
	"residence-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAmenityNotFound         = errs.New("amenity not found")
	ErrDurationExceeded        = errs.New("duration exceeds amenity limit")
	ErrInvalidTimeRange        = errs.New("start time must be before end time")
	ErrUserTimeConflict        = errs.New("user already has a reservation in this time range")
	ErrDuplicateAmenityPerDay  = errs.New("amenity already reserved by user on this day")
	ErrCapacityFull            = errs.New("amenity capacity is full for this time range")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrNotOwner                = errs.New("reservation belongs to another user")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyConflict     = errs.New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const idempotencyTTL = 24 * time.Hour

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	Cancel(ctx context.Context, reservationID, callerID uuid.UUID) (*queries.ReservationView, error)
	Hide(ctx context.Context, reservationID, callerID uuid.UUID) (*queries.ReservationView, error)
	PurgeCancelled(ctx context.Context, before time.Time) (int64, error)
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	amenityRepo        AmenityRepository
	idempotencyRepo    IdempotencyRepository
	notificationRepo   NotificationRepository
	reservationQueries queries.ReservationQueries
	txManager          shared.TxManager
	clock              clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	amenityRepo AmenityRepository,
	idempotencyRepo IdempotencyRepository,
	notificationRepo NotificationRepository,
	reservationQueries queries.ReservationQueries,
	txManager shared.TxManager,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		amenityRepo:        amenityRepo,
		idempotencyRepo:    idempotencyRepo,
		notificationRepo:   notificationRepo,
		reservationQueries: reservationQueries,
		txManager:          txManager,
		clock:              clock,
	}
}

// Create admits a reservation after the ordered validation sequence. Checks
// that depend on other reservations run inside one transaction holding
// per-user and per-amenity advisory locks, so two concurrent requests for the
// same slot serialize instead of both passing the checks.
func (r *reservationCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	requestHash := r.calculateRequestHash(req)
	expiresAt := r.clock.Now().Add(idempotencyTTL)

	existingView, err := r.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existingView != nil {
		return &CreateReservationResult{
			Reservation: existingView,
			IsReplayed:  true,
		}, nil
	}

	view, err := r.createNewReservation(ctx, req, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{
		Reservation: view,
		IsReplayed:  false,
	}, nil
}

func (r *reservationCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.ReservationView, error) {
	inserted, err := r.idempotencyRepo.TryInsert(ctx, idempotencyKey, userID, "POST /reservations", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := r.idempotencyRepo.Get(ctx, idempotencyKey, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// TryInsert lost to a row whose TTL has already passed. Take
			// the row over and run the request as fresh.
			reclaimed, reclaimErr := r.idempotencyRepo.ReclaimExpired(ctx, idempotencyKey, userID, requestHash, expiresAt)
			if reclaimErr != nil {
				return nil, errs.Mark(reclaimErr, ErrIdempotencyCheckFailed)
			}
			if reclaimed {
				return nil, nil
			}
			// A concurrent request reclaimed the key first
			return nil, ErrIdempotencyInProgress
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultReservationID != nil {
			return r.reservationQueries.GetByID(ctx, *existing.ResultReservationID)
		}
		return nil, errs.New("completed request missing result reservation ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrIdempotencyConflict
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (r *reservationCommandsImpl) createNewReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	userID, idempotencyKey uuid.UUID,
) (*queries.ReservationView, error) {
	amenitySnap, err := r.amenityRepo.FindSnapshot(ctx, req.AmenityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Duration is checked before slot ordering; a negative duration passes
	// here and is rejected as an invalid time range below. The sentinel is
	// wrapped, not marked, so handlers can match it with errors.Is.
	maxDuration := time.Duration(amenitySnap.MaxDurationMin) * time.Minute
	if req.EndTime.Sub(req.StartTime) > maxDuration {
		return nil, errs.Wrapf(ErrDurationExceeded,
			"reservation for %q may not exceed %d minutes", amenitySnap.Name, amenitySnap.MaxDurationMin)
	}

	slot, err := reservation.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}

	entity := reservation.NewReservation(req.AmenityID, userID, slot)

	reservationID, err := r.admit(ctx, entity, amenitySnap, idempotencyKey, userID)
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, reservationID)
}

// admit runs the user-overlap, same-day and capacity checks together with the
// insert as one unit. Lock order is fixed (user before amenity) so concurrent
// admissions cannot deadlock.
func (r *reservationCommandsImpl) admit(
	ctx context.Context,
	entity *reservation.Reservation,
	amenitySnap *AmenitySnapshot,
	idempotencyKey, userID uuid.UUID,
) (uuid.UUID, error) {
	slot := entity.TimeSlot()
	var reservationID uuid.UUID

	err := r.txManager.Within(ctx, func(ctx context.Context, tx sqlc.DBTX) error {
		if err := r.reservationRepo.AcquireLock(ctx, tx, lockKey("user", userID)); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := r.reservationRepo.AcquireLock(ctx, tx, lockKey("amenity", amenitySnap.ID)); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		overlaps, err := r.reservationRepo.ExistsUserOverlap(ctx, tx, userID, slot.Start(), slot.End())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlaps {
			return ErrUserTimeConflict
		}

		dayStart, dayEnd := slot.UTCDayBounds()
		sameDay, err := r.reservationRepo.ExistsSameDay(ctx, tx, userID, amenitySnap.ID, dayStart, dayEnd)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if sameDay {
			return ErrDuplicateAmenityPerDay
		}

		occupied, err := r.reservationRepo.CountOverlapping(ctx, tx, amenitySnap.ID, slot.Start(), slot.End())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if occupied >= int64(amenitySnap.Capacity) {
			return ErrCapacityFull
		}

		reservationID, err = r.reservationRepo.Create(ctx, tx, entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.enqueueJob(ctx, tx, "reservation_created", reservationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.idempotencyRepo.MarkCompleted(ctx, tx, idempotencyKey, userID, reservationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return reservationID, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, callerID uuid.UUID) (*queries.ReservationView, error) {
	snap, err := r.findOwnedSnapshot(ctx, reservationID, callerID)
	if err != nil {
		return nil, err
	}

	// Cancelling an already-cancelled reservation re-applies the same state
	err = r.txManager.Within(ctx, func(ctx context.Context, tx sqlc.DBTX) error {
		if err := r.reservationRepo.UpdateStatus(ctx, tx, snap.ID, reservation.StatusCancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return r.enqueueJob(ctx, tx, "reservation_cancelled", snap.ID)
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, reservationID)
}

func (r *reservationCommandsImpl) Hide(ctx context.Context, reservationID, callerID uuid.UUID) (*queries.ReservationView, error) {
	snap, err := r.findOwnedSnapshot(ctx, reservationID, callerID)
	if err != nil {
		return nil, err
	}

	err = r.txManager.Within(ctx, func(ctx context.Context, tx sqlc.DBTX) error {
		if err := r.reservationRepo.UpdateVisibility(ctx, tx, snap.ID, true); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, reservationID)
}

// PurgeCancelled is the only path that physically deletes reservations.
func (r *reservationCommandsImpl) PurgeCancelled(ctx context.Context, before time.Time) (int64, error) {
	deleted, err := r.reservationRepo.DeleteCancelledBefore(ctx, before)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return deleted, nil
}

func (r *reservationCommandsImpl) findOwnedSnapshot(ctx context.Context, reservationID, callerID uuid.UUID) (*ReservationSnapshot, error) {
	snap, err := r.reservationRepo.FindSnapshot(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if snap.UserID != callerID {
		return nil, ErrNotOwner
	}

	return snap, nil
}

func (r *reservationCommandsImpl) enqueueJob(ctx context.Context, tx sqlc.DBTX, topic string, reservationID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"type":           topic,
	})
	if err != nil {
		return err
	}

	return r.notificationRepo.CreateJob(ctx, tx, "email", topic, payload, r.clock.Now())
}

func (r *reservationCommandsImpl) calculateRequestHash(req reqdto.CreateReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func lockKey(scope string, id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", scope, id)
}
