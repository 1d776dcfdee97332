package request

type CreateAmenityRequest struct {
	Name           string  `json:"name" binding:"required"`
	Capacity       int32   `json:"capacity" binding:"required,min=1"`
	MaxDurationMin int32   `json:"max_duration_min" binding:"required,min=1"`
	Description    *string `json:"description,omitempty"`
}

// UpdateAmenityRequest is a partial update; nil fields are left unchanged.
type UpdateAmenityRequest struct {
	Name           *string `json:"name,omitempty"`
	Capacity       *int32  `json:"capacity,omitempty" binding:"omitempty,min=1"`
	MaxDurationMin *int32  `json:"max_duration_min,omitempty" binding:"omitempty,min=1"`
	Description    *string `json:"description,omitempty"`
}
