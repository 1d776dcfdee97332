//go:build unit || e2e

package builder

import (
	"time"

	domreservation "residence-api/internal/domain/reservation"
	reqdto "residence-api/internal/handler/dto/request"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/usecase/commands"
	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	UserID          uuid.UUID
	UserEmail       string
	UserDisplayName string
	AmenityID       uuid.UUID
	AmenityName     string
	StartTime       time.Time
	EndTime         time.Time
	Status          string
	HiddenFromUser  bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		UserID:          uuid.New(),
		UserEmail:       "tenant@example.com",
		UserDisplayName: "Test Tenant",
		AmenityID:       uuid.New(),
		AmenityName:     "Gym",
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		Status:          "confirmed",
		HiddenFromUser:  false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	slot, err := domreservation.NewTimeSlot(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(r.AmenityID, r.UserID, slot), nil
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:             uuid.New(),
		UserID:         r.UserID,
		AmenityID:      r.AmenityID,
		StartTime:      pgtype.Timestamptz{Time: r.StartTime, Valid: true},
		EndTime:        pgtype.Timestamptz{Time: r.EndTime, Valid: true},
		Status:         r.Status,
		HiddenFromUser: r.HiddenFromUser,
		CreatedAt:      pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		AmenityID: r.AmenityID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              uuid.New(),
		AmenityID:       r.AmenityID,
		AmenityName:     r.AmenityName,
		UserID:          r.UserID,
		UserEmail:       r.UserEmail,
		UserDisplayName: r.UserDisplayName,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Status:          r.Status,
		HiddenFromUser:  r.HiddenFromUser,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildUserItem() *queries.UserReservationItem {
	return &queries.UserReservationItem{
		ID:          uuid.New(),
		AmenityID:   r.AmenityID,
		AmenityName: r.AmenityName,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildAmenityItem() *queries.AmenityReservationItem {
	return &queries.AmenityReservationItem{
		ID:              uuid.New(),
		UserID:          r.UserID,
		UserDisplayName: r.UserDisplayName,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildSnapshot() *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:             uuid.New(),
		UserID:         r.UserID,
		AmenityID:      r.AmenityID,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Status:         r.Status,
		HiddenFromUser: r.HiddenFromUser,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithAmenityID(amenityID uuid.UUID) *ReservationBuilder {
	r.AmenityID = amenityID
	return r
}

func (r *ReservationBuilder) WithAmenityName(name string) *ReservationBuilder {
	r.AmenityName = name
	return r
}

func (r *ReservationBuilder) WithTimeSlot(start, end time.Time) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) WithDuration(d time.Duration) *ReservationBuilder {
	r.EndTime = r.StartTime.Add(d)
	return r
}

func (r *ReservationBuilder) AsCancelled() *ReservationBuilder {
	r.Status = "cancelled"
	return r
}

func (r *ReservationBuilder) AsHidden() *ReservationBuilder {
	r.HiddenFromUser = true
	return r
}
