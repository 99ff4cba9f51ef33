package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/mapper"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/pkg/apierrors"
	"taskforge/pkg/translator"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	c.JSON(http.StatusOK, dto.Response{
		Message: translator.Localize(apierrors.MsgUserFetched, lang),
		Data:    mapper.ToUserItem(middleware.CurrentUser(c)),
	})
}
