//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"residence-api/internal/domain/user"
	"residence-api/internal/handler/dto/request"
	"residence-api/internal/handler/dto/response"
	"residence-api/tests/common/authtest"
	"residence-api/tests/common/dbtest"
	"residence-api/tests/common/httptest"
	"residence-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "tenant@example.com", string(user.RoleTenant))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleTenant))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *AuthSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: valid credentials",
			email:          "tenant@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Error case: unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: wrong password",
			email:          "tenant@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: inactive account",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Error case: empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Error case: empty password",
			email:          "tenant@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)

				require.NotNil(t, httptest.ExtractCookie(w, "access_token"), "access token cookie not set")
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"), "refresh token cookie not set")

				// last_login is bumped on successful login
				var lastLogin any
				err = s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: refresh token from login rotates the pair", func() {
		t := s.T()

		loginW := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "tenant@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginW.Code)

		refreshCookie := httptest.ExtractCookie(loginW, "refresh_token")
		require.NotNil(t, refreshCookie)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refreshCookie.Value}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		newAccess := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, newAccess)
		require.NotEmpty(t, newAccess.Value)
	})

	s.Run("Error case: malformed refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: missing refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("Normal case: logout clears the token cookies", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "tenant@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		require.Equal(t, -1, accessCookie.MaxAge, "access token cookie should be expired")
	})

	s.Run("Error case: unauthorized without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: returns the authenticated user without secrets", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := w.Body.String()
		require.Contains(t, body, "owner@example.com")
		require.Contains(t, body, string(user.RoleOwner))
		require.NotContains(t, body, "password")
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleTenant))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleTenant)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: unauthorized without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestConcurrentLogin() {
	s.Run("Normal case: repeated logins keep both sessions valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "tenant@example.com", "password123")
		token2 := authtest.LoginUser(t, s.Router, "tenant@example.com", "password123")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
