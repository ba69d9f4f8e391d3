package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/pkg/apperror"
)

// Context keys set by the auth middleware.
const (
	KeyUserID      = "user_id"
	KeyCurrentUser = "current_user"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get(KeyUserID)
	if !exists {
		return "", apperror.ErrUnauthorized
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return "", apperror.ErrUnauthorized
	}
	return id, nil
}

// GetCurrentUser retrieves the resolved (password-hash-stripped) user the
// auth middleware injected.
func GetCurrentUser(c *gin.Context) (*entity.User, error) {
	val, exists := c.Get(KeyCurrentUser)
	if !exists {
		return nil, apperror.ErrUnauthorized
	}
	user, ok := val.(*entity.User)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}
	return user, nil
}

// Error writes a standardized error response.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("internal error")
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
