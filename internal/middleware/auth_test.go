package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielAraujo027/Kalenner/internal/config"
	"github.com/GabrielAraujo027/Kalenner/internal/middleware"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

const testSecret = "test-secret"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	secured := r.Group("/", middleware.AuthMiddleware(cfg))
	secured.GET("/whoami", func(c *gin.Context) {
		actor := middleware.ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"userId":    actor.UserID,
			"companyId": actor.CompanyID,
			"isAdmin":   actor.IsAdmin,
		})
	})
	secured.GET("/admin-only", middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func doGet(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := testRouter()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":       "user-1",
		"companyId": float64(42),
		"role":      models.RoleCliente,
		"email":     "cliente@example.com",
	})

	w := doGet(r, "/whoami", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"user-1"`)
	assert.Contains(t, w.Body.String(), `"companyId":42`)
	assert.Contains(t, w.Body.String(), `"isAdmin":false`)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w := doGet(testRouter(), "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	w := doGet(testRouter(), "/whoami", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub":       "user-1",
		"companyId": float64(42),
		"role":      models.RoleCliente,
	})

	w := doGet(testRouter(), "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":       "user-1",
		"companyId": float64(42),
		"role":      models.RoleCliente,
		"exp":       time.Now().Add(-time.Hour).Unix(),
	})

	w := doGet(testRouter(), "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MissingClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-1"})

	w := doGet(testRouter(), "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := testRouter()

	adminToken := signToken(t, testSecret, jwt.MapClaims{
		"sub":       "admin-1",
		"companyId": float64(42),
		"role":      models.RoleEmpresa,
	})
	clientToken := signToken(t, testSecret, jwt.MapClaims{
		"sub":       "user-1",
		"companyId": float64(42),
		"role":      models.RoleCliente,
	})

	assert.Equal(t, http.StatusNoContent, doGet(r, "/admin-only", "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin-only", "Bearer "+clientToken).Code)
}
