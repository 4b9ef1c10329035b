package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/GabrielAraujo027/Kalenner/internal/config"
	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

const (
	ContextActor     = "actor"
	ContextUserEmail = "userEmail"
)

// AuthMiddleware validates the bearer token and resolves the caller to
// a scheduling.Actor (userId, companyId, isAdmin) in the gin context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de acesso ausente."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Cabeçalho de autorização inválido."})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado."})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado."})
			return
		}

		userID, ok1 := claims["sub"].(string)
		companyID, ok2 := claims["companyId"].(float64)
		role, ok3 := claims["role"].(string)
		if !ok1 || !ok2 || !ok3 || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado."})
			return
		}

		c.Set(ContextActor, scheduling.Actor{
			UserID:    userID,
			CompanyID: uint(companyID),
			IsAdmin:   role == models.RoleEmpresa,
		})
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextUserEmail, email)
		}

		c.Next()
	}
}

// ActorFrom returns the resolved actor set by AuthMiddleware.
func ActorFrom(c *gin.Context) scheduling.Actor {
	return c.MustGet(ContextActor).(scheduling.Actor)
}

// RequireAdmin gates company-admin-only routes. Runs after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado."})
			return
		}
		c.Next()
	}
}
