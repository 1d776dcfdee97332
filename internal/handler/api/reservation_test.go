//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	authUserID   uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.authUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.authUserID)
		c.Set("user_role", user.RoleTenant)
		c.Next()
	}

	// Setup routes
	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.GET("/reservations", authMiddleware, s.handler.GetUserReservations)
	s.router.PATCH("/reservations/:id/cancel", authMiddleware, s.handler.CancelReservation)
	s.router.PATCH("/reservations/:id/hide", authMiddleware, s.handler.HideReservation)
	s.router.GET("/reservations/amenity/:id", authMiddleware, s.handler.GetAmenityReservations)
	s.router.DELETE("/reservations/cancelled", authMiddleware, s.handler.PurgeCancelled)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func idempotencyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.New().String()}
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildViewQuery()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.authUserID, gomock.Any()).
			Return(&commands.CreateReservationResult{Reservation: returnView}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.AmenityName, response.AmenityName)
		s.Equal("confirmed", response.Status)
	})

	s.Run("success: replayed request returns the original reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.authUserID, gomock.Any()).
			Return(&commands.CreateReservationResult{Reservation: returnView, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request when Idempotency-Key header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 Bad Request for malformed Idempotency-Key", func() {
		headers := map[string]string{"Idempotency-Key": "not-a-uuid"}
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: amenity_id (required)", mutate: testutil.Field("amenity_id", nil)},
			{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: end_time (required)", mutate: testutil.Field("end_time", nil)},
			{name: "malformed amenity_id", mutate: testutil.Field("amenity_id", "not-a-uuid")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token", idempotencyHeader())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "amenity not found",
				commandsError:  commands.ErrAmenityNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Amenity not found",
			},
			{
				// The command wraps the sentinel with the amenity's limit;
				// the wrapped form must still map to 400 and keep the detail.
				name:           "duration exceeded",
				commandsError:  errs.Wrapf(commands.ErrDurationExceeded, "reservation for %q may not exceed %d minutes", "Gym", 120),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "may not exceed 120 minutes",
			},
			{
				name:           "invalid time range",
				commandsError:  commands.ErrInvalidTimeRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Start time must be before end time",
			},
			{
				name:           "user time conflict",
				commandsError:  commands.ErrUserTimeConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "reservation in this time range",
			},
			{
				name:           "duplicate amenity per day",
				commandsError:  commands.ErrDuplicateAmenityPerDay,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already reserved this amenity",
			},
			{
				name:           "capacity full",
				commandsError:  commands.ErrCapacityFull,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "capacity is full",
			},
			{
				name:           "idempotency conflict",
				commandsError:  commands.ErrIdempotencyConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "different parameters",
			},
			{
				name:           "idempotency in progress",
				commandsError:  commands.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "being processed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.authUserID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetUserReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	url := "/reservations"

	items := []*queries.UserReservationItem{
		builder.NewReservationBuilder().BuildUserItem(),
		builder.NewReservationBuilder().WithAmenityName("Pool").BuildUserItem(),
	}

	s.Run("success: returns the caller's reservations", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authUserID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.UserReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Gym", response[0].AmenityName)
		s.Equal("Pool", response[1].AmenityName)
	})

	s.Run("success: empty list stays a JSON array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authUserID).
			Return([]*queries.UserReservationItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.UserReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authUserID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/cancel"

	returnView := builder.NewReservationBuilder().AsCancelled().BuildViewQuery()

	s.Run("success: returns 200 OK with cancelled reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID, s.authUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 404 Not Found for malformed UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/invalid-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID, s.authUserID).
			Return(nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 403 Forbidden for another user's reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID, s.authUserID).
			Return(nil, commands.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestHideReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestHideReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/hide"

	returnView := builder.NewReservationBuilder().AsHidden().BuildViewQuery()

	s.Run("success: returns 200 OK, status untouched", func() {
		s.mockCommands.EXPECT().Hide(gomock.Any(), reservationID, s.authUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 403 Forbidden for another user's reservation", func() {
		s.mockCommands.EXPECT().Hide(gomock.Any(), reservationID, s.authUserID).
			Return(nil, commands.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockCommands.EXPECT().Hide(gomock.Any(), reservationID, s.authUserID).
			Return(nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestGetAmenityReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetAmenityReservations() {
	amenityID := uuid.New()
	baseURL := "/reservations/amenity/" + amenityID.String()

	items := []*queries.AmenityReservationItem{
		builder.NewReservationBuilder().BuildAmenityItem(),
		builder.NewReservationBuilder().BuildAmenityItem(),
	}

	s.Run("success: returns full schedule without date filters", func() {
		s.mockQueries.EXPECT().ListByAmenity(gomock.Any(), amenityID, (*queries.DateRange)(nil)).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response []resdto.AmenityReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes inclusive date window", func() {
		url := baseURL + "?startDate=2026-03-01&endDate=2026-03-31"
		expectedRange := &queries.DateRange{
			Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		}

		s.mockQueries.EXPECT().ListByAmenity(gomock.Any(), amenityID, expectedRange).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.AmenityReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request on date parameter problems", func() {
		testCases := []struct {
			name   string
			params string
		}{
			{name: "only startDate given", params: "?startDate=2026-03-01"},
			{name: "only endDate given", params: "?endDate=2026-03-31"},
			{name: "malformed date", params: "?startDate=03/01/2026&endDate=2026-03-31"},
			{name: "endDate precedes startDate", params: "?startDate=2026-03-31&endDate=2026-03-01"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+tc.params, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for malformed amenity UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/amenity/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid amenity ID")
	})

	s.Run("error: 404 Not Found for unknown amenity", func() {
		s.mockQueries.EXPECT().ListByAmenity(gomock.Any(), amenityID, (*queries.DateRange)(nil)).
			Return(nil, queries.ErrAmenityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Amenity not found")
	})
}

// ================================================================================
// TestPurgeCancelled
// ================================================================================

func (s *ReservationHandlerTestSuite) TestPurgeCancelled() {
	url := "/reservations/cancelled?before=2026-03-01T00:00:00Z"

	s.Run("success: returns deleted count", func() {
		before := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().PurgeCancelled(gomock.Any(), before).
			Return(int64(4), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.PurgeCancelledResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(4), response.Deleted)
	})

	s.Run("error: 400 Bad Request when before is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/cancelled", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "before")
	})

	s.Run("error: 400 Bad Request for non-RFC3339 cutoff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/cancelled?before=yesterday", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "before")
	})
}
