package request

type CreateApartmentRequest struct {
	Number string `json:"number" binding:"required"`
	Floor  int32  `json:"floor" binding:"required"`
}
