package api

import (
	"errors"
	"net/http"

	reqdto "residence-api/internal/handler/dto/request"
	resdto "residence-api/internal/handler/dto/response"
	"residence-api/internal/usecase/commands"
	"residence-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AmenityHandler struct {
	amenityCommands commands.AmenityCommands
	amenityQueries  queries.AmenityQueries
}

func NewAmenityHandler(amenityCommands commands.AmenityCommands, amenityQueries queries.AmenityQueries) *AmenityHandler {
	return &AmenityHandler{
		amenityCommands: amenityCommands,
		amenityQueries:  amenityQueries,
	}
}

// @Summary Create amenity
// @Description Register a new bookable amenity (admin only)
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAmenityRequest true "Amenity request"
// @Success 201 {object} resdto.AmenityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /amenities [post]
func (h *AmenityHandler) CreateAmenity(c *gin.Context) {
	var req reqdto.CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.amenityCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.respondWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAmenityView(view))
}

// @Summary List amenities
// @Description List all amenities ordered by name
// @Tags amenities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AmenityResponse
// @Failure 401 {object} map[string]string
// @Router /amenities [get]
func (h *AmenityHandler) ListAmenities(c *gin.Context) {
	views, err := h.amenityQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityViews(views))
}

// @Summary Get amenity
// @Description Get amenity by ID
// @Tags amenities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /amenities/{id} [get]
func (h *AmenityHandler) GetAmenity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amenity ID format",
		})
		return
	}

	view, err := h.amenityQueries.GetByID(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromAmenityView(view))
}

// @Summary Update amenity
// @Description Partially update an amenity (admin only)
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Param request body reqdto.UpdateAmenityRequest true "Fields to update"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /amenities/{id} [patch]
func (h *AmenityHandler) UpdateAmenity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amenity ID format",
		})
		return
	}

	var req reqdto.UpdateAmenityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.amenityCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityView(view))
}

// @Summary Delete amenity
// @Description Delete an amenity without reservations (admin only)
// @Tags amenities
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /amenities/{id} [delete]
func (h *AmenityHandler) DeleteAmenity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amenity ID format",
		})
		return
	}

	if err := h.amenityCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AmenityHandler) respondWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAmenityNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Amenity not found",
		})
	case errors.Is(err, commands.ErrAmenityNameTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Amenity name already taken",
		})
	case errors.Is(err, commands.ErrAmenityInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Amenity has existing reservations",
		})
	case errors.Is(err, commands.ErrAmenityValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amenity data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
