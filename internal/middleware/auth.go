package middleware

import (
	"strings"

	"shiftmate/internal/auth"
	"shiftmate/internal/logger"
	"shiftmate/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет bearer-токен и кладет userID и role
// в контекст запроса. Все защищенные маршруты проходят через него:
// личность вызывающего берется только отсюда, никогда из тела запроса.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header is missing"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header must be 'Bearer {token}'"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Token validation failed",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"ip", c.ClientIP(),
			)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware пропускает только пользователей с указанной ролью.
// Ставится после AuthMiddleware.
func RoleMiddleware(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Operation not allowed for this user role"))
			c.Abort()
			return
		}
		c.Next()
	}
}
