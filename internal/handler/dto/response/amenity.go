package response

import (
	"time"

	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AmenityResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Capacity       int32     `json:"capacity"`
	MaxDurationMin int32     `json:"maxDurationMin"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromAmenityView(rm *queries.AmenityView) *AmenityResponse {
	var resp AmenityResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAmenityViews(rms []*queries.AmenityView) []*AmenityResponse {
	result := make([]*AmenityResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromAmenityView(rm)
	}
	return result
}
