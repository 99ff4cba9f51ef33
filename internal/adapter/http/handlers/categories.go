package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/mapper"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
	"taskforge/pkg/translator"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)

	categories, err := h.categoryService.ListCategories(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeServiceError(c, lang, err, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Message: translator.Localize(apierrors.MsgCategoriesFetched, lang),
		Data:    mapper.ToCategoryItems(categories),
	})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), middleware.CurrentUser(c), req.Name)
	if err != nil {
		writeServiceError(c, lang, err, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Message: translator.Localize(apierrors.MsgCategoryCreated, lang),
		Data:    mapper.ToCategoryItem(category),
	})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		writeServiceError(c, lang, err, "failed to get category")
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Message: translator.Localize(apierrors.MsgCategoryFetched, lang),
		Data:    mapper.ToCategoryItem(category),
	})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), middleware.CurrentUser(c), id, req.Name)
	if err != nil {
		writeServiceError(c, lang, err, "failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Message: translator.Localize(apierrors.MsgCategoryUpdated, lang),
		Data:    mapper.ToCategoryItem(category),
	})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		writeServiceError(c, lang, err, "failed to delete category")
		return
	}

	c.JSON(http.StatusOK, dto.Response{Message: translator.Localize(apierrors.MsgCategoryDeleted, lang)})
}

// pathID parses the :id segment, replying 400 itself when it is not a
// positive integer.
func pathID(c *gin.Context, lang string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return 0, false
	}
	return id, true
}
