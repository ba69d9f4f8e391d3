package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/internal/auth"
	"github.com/ummahconnect/backend/internal/entity"
	userRepo "github.com/ummahconnect/backend/internal/modules/user/repository"
	"github.com/ummahconnect/backend/pkg/response"
)

// AuthMiddleware resolves the caller's identity from the bearer token on
// every protected request. No session state is kept between requests.
type AuthMiddleware struct {
	userRepo userRepo.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthMiddleware(repo userRepo.UserRepository, tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{userRepo: repo, tokens: tokens}
}

// RequireAuth rejects the request unless a valid, unexpired bearer token
// resolves to an existing user. On success the password-hash-stripped user
// is injected into the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		userID, err := m.tokens.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		sanitized := user.Sanitize()
		c.Set(response.KeyUserID, user.ID)
		c.Set(response.KeyCurrentUser, &sanitized)
		c.Next()
	}
}

// RequireAdmin layers an admin role check on top of RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := response.GetCurrentUser(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		if user.Role != entity.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
