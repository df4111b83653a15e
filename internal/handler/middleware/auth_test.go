//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const testSecret = "middleware-test-secret"

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtService *jwt.Service
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtService = jwt.NewService(testSecret, time.Hour)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))

	echo := func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "role": identity.Role.String()})
	}

	s.router.GET("/me", auth.RequireAuth(), echo)
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), echo)
	s.router.GET("/unguarded", auth.RequireRole(user.RoleAdmin), echo)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

type identityBody struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (s *AuthMiddlewareTestSuite) token(userID string, role user.Role) string {
	token, err := s.jwtService.GenerateToken(userID, role)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, s.token("u-1", user.RoleUser))

		var body identityBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("u-1", body.UserID)
		s.Equal("user", body.Role)
	})

	s.Run("success: access_token cookie", func() {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.token("u-2", user.RoleAdmin)}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "")

		var body identityBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("u-2", body.UserID)
		s.Equal("admin", body.Role)
	})

	s.Run("success: header wins over cookie", func() {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.token("from-cookie", user.RoleUser)}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, s.token("from-header", user.RoleUser))

		var body identityBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("from-header", body.UserID)
	})

	s.Run("error: token missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authorization token missing")
	})

	s.Run("error: invalid tokens", func() {
		otherService := jwt.NewService("another-secret", time.Hour)
		foreign, err := otherService.GenerateToken("u-1", user.RoleUser)
		s.Require().NoError(err)
		expired, err := jwt.NewService(testSecret, -time.Minute).GenerateToken("u-1", user.RoleUser)
		s.Require().NoError(err)

		for name, token := range map[string]string{
			"garbage":      "not-a-jwt",
			"other secret": foreign,
			"expired":      expired,
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid token")
			})
		}
	})

	s.Run("error: bad cookie is rejected even without a header", func() {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "tampered"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("success: admin passes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, s.token("a-1", user.RoleAdmin))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: user is forbidden", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, s.token("u-1", user.RoleUser))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied. Admins only.")
	})

	s.Run("error: no identity on the context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unguarded", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authorization token missing")
	})
}
