//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"cape-tours-api/internal/domain/user"
	"cape-tours-api/internal/handler/dto/request"
	"cape-tours-api/internal/handler/dto/response"
	"cape-tours-api/tests/common/authtest"
	"cape-tours-api/tests/common/dbtest"
	"cape-tours-api/tests/common/httptest"
	"cape-tours-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
	dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", "member")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "member")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: Valid credentials",
			email:          "admin@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Error case: Unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: Wrong password",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: Inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Error case: Empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Error case: Empty password",
			email:          "admin@example.com",
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
				require.NotEqual(t, "", loginRes.UserID.String())

				require.NotNil(t, httptest.ExtractCookie(w, "access_token"), "access token cookie missing")
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"), "refresh token cookie missing")

				var lastLogin any
				err = s.DB.QueryRow(s.T().Context(), "SELECT last_login_at FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login_at was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("Normal case: Refresh via cookie rotates both tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		cookies := httptest.ExtractCookies(w)

		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusNoContent, rw.Code, rw.Body.String())
		require.NotNil(t, httptest.ExtractCookie(rw, "access_token"))
		require.NotNil(t, httptest.ExtractCookie(rw, "refresh_token"))
	})

	s.Run("Error case: Invalid refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: Missing refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: Logout clears the session cookies", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		access := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, access)
		require.Empty(t, access.Value)
	})

	s.Run("Error case: Logout without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: Member profile", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "member@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "member@example.com", me.Email)
		require.Equal(t, "member", me.Role)
		require.Nil(t, me.DriverID)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("Normal case: Driver profile carries the linked driver", func() {
		t := s.T()

		token := authtest.CreateDriverAndLogin(t, s.DB, s.Router, "sipho@example.com", dbtest.DriverSiphoID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "driver", me.Role)
		require.NotNil(t, me.DriverID)
		require.Equal(t, dbtest.DriverSiphoID, *me.DriverID)
	})

	s.Run("Error case: Expired token", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", "admin")
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleAdmin, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: No token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
