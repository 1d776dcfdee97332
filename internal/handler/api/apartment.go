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

type ApartmentHandler struct {
	apartmentCommands commands.ApartmentCommands
	apartmentQueries  queries.ApartmentQueries
}

func NewApartmentHandler(apartmentCommands commands.ApartmentCommands, apartmentQueries queries.ApartmentQueries) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentCommands: apartmentCommands,
		apartmentQueries:  apartmentQueries,
	}
}

// @Summary Create apartment
// @Description Register a new apartment unit (admin only)
// @Tags apartments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateApartmentRequest true "Apartment request"
// @Success 201 {object} resdto.ApartmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /apartments [post]
func (h *ApartmentHandler) CreateApartment(c *gin.Context) {
	var req reqdto.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.apartmentCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrApartmentNumberTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Apartment number already taken",
			})
		case errors.Is(err, commands.ErrApartmentValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid apartment data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromApartmentView(view))
}

// @Summary List apartments
// @Description List all apartments ordered by number
// @Tags apartments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ApartmentResponse
// @Failure 401 {object} map[string]string
// @Router /apartments [get]
func (h *ApartmentHandler) ListApartments(c *gin.Context) {
	views, err := h.apartmentQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromApartmentViews(views))
}

// @Summary Get apartment
// @Description Get apartment by ID
// @Tags apartments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.ApartmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /apartments/{id} [get]
func (h *ApartmentHandler) GetApartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid apartment ID format",
		})
		return
	}

	view, err := h.apartmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrApartmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Apartment not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromApartmentView(view))
}
