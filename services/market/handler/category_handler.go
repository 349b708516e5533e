package handler

import (
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListCategoriesHandler handles GET /admin/categories
func (h *MarketHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context(), helpers.PrincipalFrom(c))
	if err != nil {
		helpers.RespondError(c, "ListCategoriesHandler", err, nil)
		return
	}

	if categories == nil {
		categories = []model.CategoryView{}
	}

	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
	helpers.LogSuccess("ListCategoriesHandler", "categories retrieved successfully", map[string]any{"count": len(categories)})
}

// GetCategoryHandler handles GET /admin/categories/:id
func (h *MarketHandler) GetCategoryHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetCategoryHandler")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), helpers.PrincipalFrom(c), id)
	if err != nil {
		helpers.RespondError(c, "GetCategoryHandler", err, map[string]any{"category_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, category, "category retrieved successfully")
	helpers.LogSuccess("GetCategoryHandler", "category retrieved successfully", map[string]any{"category_id": id})
}

// CreateCategoryHandler handles POST /admin/categories
func (h *MarketHandler) CreateCategoryHandler(c *gin.Context) {
	var req helpers.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCategoryHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	category, err := h.service.CreateCategory(c.Request.Context(), p, req.Name)
	if err != nil {
		helpers.RespondError(c, "CreateCategoryHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, category, "category created successfully")
	helpers.LogSuccess("CreateCategoryHandler", "category created successfully", map[string]any{"category_id": category.ID})
}

// UpdateCategoryHandler handles PUT /admin/categories/:id
func (h *MarketHandler) UpdateCategoryHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "UpdateCategoryHandler")
	if !ok {
		return
	}

	var req helpers.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCategoryHandler", err)
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), helpers.PrincipalFrom(c), id, req.Name)
	if err != nil {
		helpers.RespondError(c, "UpdateCategoryHandler", err, map[string]any{"category_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, category, "category updated successfully")
	helpers.LogSuccess("UpdateCategoryHandler", "category updated successfully", map[string]any{"category_id": id})
}

// DeleteCategoryHandler handles DELETE /admin/categories/:id
func (h *MarketHandler) DeleteCategoryHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "DeleteCategoryHandler")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), helpers.PrincipalFrom(c), id); err != nil {
		helpers.RespondError(c, "DeleteCategoryHandler", err, map[string]any{"category_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "category deleted successfully")
	helpers.LogSuccess("DeleteCategoryHandler", "category deleted successfully", map[string]any{"category_id": id})
}
