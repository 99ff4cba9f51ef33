package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/mapper"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
	"taskforge/pkg/translator"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	_, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		writeServiceError(c, lang, err, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.Response{Message: translator.Localize(apierrors.MsgUserCreated, lang)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, lang, err, "failed to log user in")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  mapper.ToUserItem(user),
	})
}

// Logout revokes the token the request authenticated with; other sessions
// of the same user stay logged in.
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.authService.Logout(c.Request.Context(), middleware.CurrentToken(c)); err != nil {
		writeServiceError(c, lang, err, "failed to log user out")
		return
	}

	c.JSON(http.StatusOK, dto.Response{Message: translator.Localize(apierrors.MsgLoggedOut, lang)})
}
