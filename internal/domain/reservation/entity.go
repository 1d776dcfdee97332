package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
)

type Reservation struct {
	id             uuid.UUID
	amenityID      uuid.UUID
	userID         uuid.UUID
	timeSlot       TimeSlot
	status         Status
	hiddenFromUser bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewReservation builds a confirmed reservation. Admission rules (duration
// limits, conflicts, capacity) are evaluated by the engine before this is
// called; the entity only guards its own structural invariants.
func NewReservation(amenityID, userID uuid.UUID, slot TimeSlot) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		amenityID: amenityID,
		userID:    userID,
		timeSlot:  slot,
		status:    StatusConfirmed,
	}
}

func ReconstructReservation(
	id, amenityID, userID uuid.UUID,
	slot TimeSlot,
	status Status,
	hiddenFromUser bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		amenityID:      amenityID,
		userID:         userID,
		timeSlot:       slot,
		status:         status,
		hiddenFromUser: hiddenFromUser,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Cancel transitions confirmed -> cancelled. Cancelling an already-cancelled
// reservation re-applies the same state; there is no un-cancel.
func (r *Reservation) Cancel() {
	r.status = StatusCancelled
}

// Hide flags the reservation out of the owner's listings without touching
// status or capacity accounting.
func (r *Reservation) Hide() {
	r.hiddenFromUser = true
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.timeSlot.End())
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) AmenityID() uuid.UUID { return r.amenityID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) HiddenFromUser() bool { return r.hiddenFromUser }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
