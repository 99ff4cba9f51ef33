package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
)

const (
	contextKeyUser  = "currentUser"
	contextKeyToken = "currentToken"
)

// AuthMiddleware resolves the caller from the bearer token and aborts with
// 401 when the token is missing, malformed, revoked or expired.
func AuthMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token := bearerToken(c.GetHeader("Authorization"))
		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidToken) {
				zap.L().Error("failed to authenticate request", zap.Error(err))
				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
				)
				return
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
			)
			return
		}

		c.Set(contextKeyUser, user)
		c.Set(contextKeyToken, token)
		c.Next()
	}
}

// CurrentUser returns the authenticated caller. Only valid on routes behind
// AuthMiddleware.
func CurrentUser(c *gin.Context) domain.User {
	if value, exists := c.Get(contextKeyUser); exists {
		if user, ok := value.(domain.User); ok {
			return user
		}
	}
	return domain.User{}
}

// CurrentToken returns the plaintext bearer token the caller authenticated
// with, so logout can revoke exactly that token.
func CurrentToken(c *gin.Context) string {
	if value, exists := c.Get(contextKeyToken); exists {
		if token, ok := value.(string); ok {
			return token
		}
	}
	return ""
}

func bearerToken(header string) string {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
