package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "residence-api/internal/handler/dto/request"
	resdto "residence-api/internal/handler/dto/response"
	"residence-api/internal/handler/middleware"
	"residence-api/internal/usecase/commands"
	"residence-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errIdempotencyKeyRequired = errors.New("Idempotency-Key header is required")

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve an amenity time slot with idempotency key
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reservationCommands.Create(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(result.Reservation))
}

func (h *ReservationHandler) respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAmenityNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Amenity not found",
		})
	case errors.Is(err, commands.ErrDurationExceeded):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, commands.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Start time must be before end time",
		})
	case errors.Is(err, commands.ErrUserTimeConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "You already have a reservation in this time range",
		})
	case errors.Is(err, commands.ErrDuplicateAmenityPerDay):
		c.JSON(http.StatusConflict, gin.H{
			"error": "You already reserved this amenity on this day",
		})
	case errors.Is(err, commands.ErrCapacityFull):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Amenity capacity is full for this time range",
		})
	case errors.Is(err, commands.ErrIdempotencyConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Idempotency key reused with different parameters",
		})
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation request is currently being processed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary List own reservations
// @Description List the current user's reservations, hidden ones excluded
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.reservationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.UserReservationResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromUserReservationItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Cancel reservation
// @Description Cancel an own reservation; the slot is released
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/cancel [patch]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.mutateOwned(c, h.reservationCommands.Cancel)
}

// @Summary Hide reservation
// @Description Hide an own reservation from listings without cancelling it
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/hide [patch]
func (h *ReservationHandler) HideReservation(c *gin.Context) {
	h.mutateOwned(c, h.reservationCommands.Hide)
}

// @Summary List amenity schedule
// @Description List confirmed reservations for one amenity, optionally windowed by day
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Param startDate query string false "Inclusive start day (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end day (YYYY-MM-DD)"
// @Success 200 {array} resdto.AmenityReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/amenity/{id} [get]
func (h *ReservationHandler) GetAmenityReservations(c *gin.Context) {
	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amenity ID format",
		})
		return
	}

	var query reqdto.AmenityScheduleQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	dateRange, err := query.ToDateRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	items, err := h.reservationQueries.ListByAmenity(c.Request.Context(), amenityID, dateRange)
	if err != nil {
		if errors.Is(err, queries.ErrAmenityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Amenity not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AmenityReservationResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAmenityReservationItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Purge cancelled reservations
// @Description Physically delete cancelled reservations that ended before a cutoff
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param before query string true "Cutoff time (RFC3339)"
// @Success 200 {object} resdto.PurgeCancelledResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/cancelled [delete]
func (h *ReservationHandler) PurgeCancelled(c *gin.Context) {
	var query reqdto.PurgeCancelledQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing before parameter",
		})
		return
	}

	deleted, err := h.reservationCommands.PurgeCancelled(c.Request.Context(), query.Before)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.PurgeCancelledResponse{Deleted: deleted})
}

func (h *ReservationHandler) mutateOwned(
	c *gin.Context,
	op func(ctx context.Context, reservationID, callerID uuid.UUID) (*queries.ReservationView, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}

	view, err := op(c.Request.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
