//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"residence-api/internal/domain/user"
	"residence-api/internal/handler/api"
	resdto "residence-api/internal/handler/dto/response"
	"residence-api/internal/pkg/errs"
	"residence-api/internal/usecase/commands"
	"residence-api/internal/usecase/queries"
	"residence-api/tests/common/builder"
	"residence-api/tests/common/httptest"
	"residence-api/tests/common/testutil"
	commandsmock "residence-api/tests/mock/commands"
	queriesmock "residence-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AmenityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAmenityCommands
	mockQueries  *queriesmock.MockAmenityQueries
	handler      *api.AmenityHandler
}

func (s *AmenityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAmenityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAmenityQueries(s.mockCtrl)
	s.handler = api.NewAmenityHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(role user.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
				return
			}
			c.Set("user_id", uuid.New())
			c.Set("user_role", role)
			c.Next()
		}
	}

	// Write routes are admin-gated in the real router
	s.router.POST("/amenities", authMiddleware(user.RoleAdmin), s.handler.CreateAmenity)
	s.router.GET("/amenities", authMiddleware(user.RoleTenant), s.handler.ListAmenities)
	s.router.GET("/amenities/:id", authMiddleware(user.RoleTenant), s.handler.GetAmenity)
	s.router.PATCH("/amenities/:id", authMiddleware(user.RoleAdmin), s.handler.UpdateAmenity)
	s.router.DELETE("/amenities/:id", authMiddleware(user.RoleAdmin), s.handler.DeleteAmenity)
}

func (s *AmenityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAmenityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AmenityHandlerTestSuite))
}

// ================================================================================
// TestCreateAmenity
// ================================================================================

func (s *AmenityHandlerTestSuite) TestCreateAmenity() {
	url := "/amenities"

	reqBody := builder.NewAmenityBuilder().BuildCreateRequestDTO()
	returnView := builder.NewAmenityBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created with AmenityResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.Capacity, response.Capacity)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: capacity (required)", mutate: testutil.Field("capacity", nil)},
			{name: "capacity below minimum", mutate: testutil.Field("capacity", 0)},
			{name: "max_duration_min below minimum", mutate: testutil.Field("max_duration_min", 0)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict for duplicate name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, commands.ErrAmenityNameTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already taken")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestListAmenities
// ================================================================================

func (s *AmenityHandlerTestSuite) TestListAmenities() {
	url := "/amenities"

	views := []*queries.AmenityView{
		builder.NewAmenityBuilder().BuildViewQuery(),
		builder.NewAmenityBuilder().WithName("Pool").BuildViewQuery(),
	}

	s.Run("success: returns amenity list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetAmenity
// ================================================================================

func (s *AmenityHandlerTestSuite) TestGetAmenity() {
	amenityID := uuid.New()
	url := "/amenities/" + amenityID.String()

	returnView := builder.NewAmenityBuilder().BuildViewQuery()
	returnView.ID = amenityID

	s.Run("success: returns 200 OK with AmenityResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), amenityID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(amenityID, response.ID)
	})

	s.Run("error: 400 Bad Request for malformed UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/amenities/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid amenity ID")
	})

	s.Run("error: 404 Not Found for missing amenity", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), amenityID).
			Return(nil, queries.ErrAmenityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Amenity not found")
	})
}

// ================================================================================
// TestUpdateAmenity
// ================================================================================

func (s *AmenityHandlerTestSuite) TestUpdateAmenity() {
	amenityID := uuid.New()
	url := "/amenities/" + amenityID.String()

	reqBody := builder.NewAmenityBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewAmenityBuilder().BuildViewQuery()
	returnView.ID = amenityID

	s.Run("success: returns 200 OK with updated amenity", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), amenityID, reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(amenityID, response.ID)
	})

	s.Run("error: 400 Bad Request for zero capacity", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("capacity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request when the command rejects the merged state", func() {
		// Validation failures are wrapped around the sentinel; the handler
		// must still resolve them to 400.
		s.mockCommands.EXPECT().Update(gomock.Any(), amenityID, reqBody).
			Return(nil, errs.Wrap(commands.ErrAmenityValidation, "amenity capacity must be at least 1")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid amenity data")
	})

	s.Run("error: 404 Not Found for missing amenity", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), amenityID, reqBody).
			Return(nil, commands.ErrAmenityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Amenity not found")
	})

	s.Run("error: 409 Conflict for duplicate name", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), amenityID, reqBody).
			Return(nil, commands.ErrAmenityNameTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already taken")
	})
}

// ================================================================================
// TestDeleteAmenity
// ================================================================================

func (s *AmenityHandlerTestSuite) TestDeleteAmenity() {
	amenityID := uuid.New()
	url := "/amenities/" + amenityID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), amenityID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when amenity has reservations", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), amenityID).
			Return(commands.ErrAmenityInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "existing reservations")
	})

	s.Run("error: 404 Not Found for missing amenity", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), amenityID).
			Return(commands.ErrAmenityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Amenity not found")
	})
}
