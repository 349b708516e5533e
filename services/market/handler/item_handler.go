package handler

import (
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListItemsHandler handles GET /items
func (h *MarketHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context(), helpers.PrincipalFrom(c))
	if err != nil {
		helpers.RespondError(c, "ListItemsHandler", err, nil)
		return
	}

	if items == nil {
		items = []model.ItemView{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("ListItemsHandler", "items retrieved successfully", map[string]any{"count": len(items)})
}

// GetItemHandler handles GET /items/:id
func (h *MarketHandler) GetItemHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetItemHandler")
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), helpers.PrincipalFrom(c), id)
	if err != nil {
		helpers.RespondError(c, "GetItemHandler", err, map[string]any{"item_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
	helpers.LogSuccess("GetItemHandler", "item retrieved successfully", map[string]any{"item_id": id})
}

// CreateItemHandler handles POST /items
func (h *MarketHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	item, err := h.service.CreateItem(c.Request.Context(), p, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "CreateItemHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{"item_id": item.ID})
}

// UpdateItemHandler handles PUT /items/:id
func (h *MarketHandler) UpdateItemHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "UpdateItemHandler")
	if !ok {
		return
	}

	var req helpers.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), helpers.PrincipalFrom(c), id, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "UpdateItemHandler", err, map[string]any{"item_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item updated successfully")
	helpers.LogSuccess("UpdateItemHandler", "item updated successfully", map[string]any{"item_id": id})
}

// DeleteItemHandler handles DELETE /items/:id
func (h *MarketHandler) DeleteItemHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "DeleteItemHandler")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), helpers.PrincipalFrom(c), id); err != nil {
		helpers.RespondError(c, "DeleteItemHandler", err, map[string]any{"item_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{"item_id": id})
}
