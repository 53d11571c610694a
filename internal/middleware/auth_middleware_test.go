package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService, allowed ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	group := router.Group("", mw.JWTAuth())
	if len(allowed) > 0 {
		group.Use(mw.RoleRequired(allowed...))
	}
	group.GET("/protected", func(c *gin.Context) {
		id, _ := AccountIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"accountId": id})
	})
	return router
}

func testJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "schoolhub.test",
	})
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := newTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredSvc := testJWTService(-time.Minute)
	token, _, err := expiredSvc.GenerateToken(5, "a@school.test", "admin")
	require.NoError(t, err)

	router := newTestRouter(expiredSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestJWTAuth_ValidToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	token, _, err := svc.GenerateToken(5, "a@school.test", "admin")
	require.NoError(t, err)

	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accountId":5`)
}

func TestRoleRequired(t *testing.T) {
	svc := testJWTService(time.Hour)

	tests := []struct {
		name       string
		role       string
		allowed    []models.Role
		wantStatus int
	}{
		{name: "admin allowed", role: "admin", allowed: []models.Role{models.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "teacher rejected from admin route", role: "teacher", allowed: []models.Role{models.RoleAdmin}, wantStatus: http.StatusForbidden},
		{name: "one of several roles", role: "parent", allowed: []models.Role{models.RoleAdmin, models.RoleParent}, wantStatus: http.StatusOK},
		{name: "student rejected", role: "student", allowed: []models.Role{models.RoleAdmin, models.RoleTeacher}, wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := svc.GenerateToken(9, "x@school.test", tt.role)
			require.NoError(t, err)

			router := newTestRouter(svc, tt.allowed...)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
