package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/services"
)

const userIDKey = "userID"

// TokenAuth resolves the bearer credential in the Authorization header to a
// user by database lookup and stores the user ID in the request context.
// Requests without a valid token are rejected with 401.
func TokenAuth(tokens services.TokenServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		user, err := tokens.GetUserByKey(parts[1])
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *apperrors.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
		},
	})
	c.Abort()
}
