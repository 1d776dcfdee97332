package response

import (
	"time"

	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ApartmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Floor     int32     `json:"floor"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromApartmentView(rm *queries.ApartmentView) *ApartmentResponse {
	var resp ApartmentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromApartmentViews(rms []*queries.ApartmentView) []*ApartmentResponse {
	result := make([]*ApartmentResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromApartmentView(rm)
	}
	return result
}
