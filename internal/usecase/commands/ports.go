package commands

import (
	"context"
	"time"

	"residence-api/internal/domain/amenity"
	"residence-api/internal/domain/apartment"
	"residence-api/internal/domain/reservation"
	sqlc "residence-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type AmenitySnapshot struct {
	ID             uuid.UUID
	Name           string
	Capacity       int32
	MaxDurationMin int32
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ReservationSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AmenityID      uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	Status         string
	HiddenFromUser bool
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindSnapshot(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status) error
	UpdateVisibility(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, hidden bool) error
	DeleteCancelledBefore(ctx context.Context, before time.Time) (int64, error)

	// Admission checks. Valid only inside the transaction holding the
	// advisory locks; results are stale the moment the locks are released.
	AcquireLock(ctx context.Context, tx sqlc.DBTX, key string) error
	ExistsUserOverlap(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, start, end time.Time) (bool, error)
	ExistsSameDay(ctx context.Context, tx sqlc.DBTX, userID, amenityID uuid.UUID, dayStart, dayEnd time.Time) (bool, error)
	CountOverlapping(ctx context.Context, tx sqlc.DBTX, amenityID uuid.UUID, start, end time.Time) (int64, error)
}

type AmenityRepository interface {
	FindSnapshot(ctx context.Context, id uuid.UUID) (*AmenitySnapshot, error)
	Create(ctx context.Context, a *amenity.Amenity) (uuid.UUID, error)
	Update(ctx context.Context, a *amenity.Amenity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApartmentRepository interface {
	Create(ctx context.Context, a *apartment.Apartment) (uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether this call claimed the key (true) or the key
	// already existed (false).
	TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*IdempotencyRecord, error)
	// ReclaimExpired takes over a key row whose TTL has passed, resetting it
	// to processing with a new request hash and expiry. Reports whether a row
	// was reclaimed.
	ReclaimExpired(ctx context.Context, key uuid.UUID, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, resultReservationID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
