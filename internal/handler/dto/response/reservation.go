package response

import (
	"time"

	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                 uuid.UUID `json:"id"`
	AmenityID          uuid.UUID `json:"amenityId"`
	AmenityName        string    `json:"amenityName"`
	AmenityDescription *string   `json:"amenityDescription,omitempty"`
	UserID             uuid.UUID `json:"userId"`
	UserEmail          string    `json:"userEmail"`
	UserDisplayName    string    `json:"userDisplayName"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type UserReservationResponse struct {
	ID                 uuid.UUID `json:"id"`
	AmenityID          uuid.UUID `json:"amenityId"`
	AmenityName        string    `json:"amenityName"`
	AmenityDescription *string   `json:"amenityDescription,omitempty"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

type AmenityReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	UserDisplayName string    `json:"userDisplayName"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PurgeCancelledResponse struct {
	Deleted int64 `json:"deleted"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                 rm.ID,
		AmenityID:          rm.AmenityID,
		AmenityName:        rm.AmenityName,
		AmenityDescription: rm.AmenityDescription,
		UserID:             rm.UserID,
		UserEmail:          rm.UserEmail,
		UserDisplayName:    rm.UserDisplayName,
		StartTime:          rm.StartTime,
		EndTime:            rm.EndTime,
		Status:             rm.Status,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

func FromUserReservationItem(rm *queries.UserReservationItem) *UserReservationResponse {
	return &UserReservationResponse{
		ID:                 rm.ID,
		AmenityID:          rm.AmenityID,
		AmenityName:        rm.AmenityName,
		AmenityDescription: rm.AmenityDescription,
		StartTime:          rm.StartTime,
		EndTime:            rm.EndTime,
		Status:             rm.Status,
		CreatedAt:          rm.CreatedAt,
	}
}

func FromAmenityReservationItem(rm *queries.AmenityReservationItem) *AmenityReservationResponse {
	return &AmenityReservationResponse{
		ID:              rm.ID,
		UserID:          rm.UserID,
		UserDisplayName: rm.UserDisplayName,
		StartTime:       rm.StartTime,
		EndTime:         rm.EndTime,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
	}
}
