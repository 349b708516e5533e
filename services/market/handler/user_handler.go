package handler

import (
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListUsersHandler handles GET /admin/users
func (h *MarketHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context(), helpers.PrincipalFrom(c))
	if err != nil {
		helpers.RespondError(c, "ListUsersHandler", err, nil)
		return
	}

	if users == nil {
		users = []model.UserView{}
	}

	utils.JSONResponse(c, http.StatusOK, users, "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{"count": len(users)})
}

// GetUserHandler handles GET /admin/users/:id
func (h *MarketHandler) GetUserHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetUserHandler")
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), helpers.PrincipalFrom(c), id)
	if err != nil {
		helpers.RespondError(c, "GetUserHandler", err, map[string]any{"user_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// CreateAdminHandler handles POST /admin/users
func (h *MarketHandler) CreateAdminHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAdminHandler", err)
		return
	}

	user, err := h.service.CreateAdmin(c.Request.Context(), helpers.PrincipalFrom(c), req.ToModel())
	if err != nil {
		helpers.RespondError(c, "CreateAdminHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "admin created successfully")
	helpers.LogSuccess("CreateAdminHandler", "admin created successfully", map[string]any{"user_id": user.ID})
}

// UpdateUserHandler handles PUT /admin/users/:id
func (h *MarketHandler) UpdateUserHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "UpdateUserHandler")
	if !ok {
		return
	}

	var req helpers.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), helpers.PrincipalFrom(c), id, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "UpdateUserHandler", err, map[string]any{"user_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user updated successfully")
	helpers.LogSuccess("UpdateUserHandler", "user updated successfully", map[string]any{"user_id": id})
}

// DeleteUserHandler handles DELETE /admin/users/:id
func (h *MarketHandler) DeleteUserHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "DeleteUserHandler")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), helpers.PrincipalFrom(c), id); err != nil {
		helpers.RespondError(c, "DeleteUserHandler", err, map[string]any{"user_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "user deleted successfully")
	helpers.LogSuccess("DeleteUserHandler", "user deleted successfully", map[string]any{"user_id": id})
}

// GetMeHandler handles GET /users/me
func (h *MarketHandler) GetMeHandler(c *gin.Context) {
	user, err := h.service.GetMe(c.Request.Context(), helpers.PrincipalFrom(c))
	if err != nil {
		helpers.RespondError(c, "GetMeHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile retrieved successfully")
}

// UpdateMeHandler handles PUT /users/me
func (h *MarketHandler) UpdateMeHandler(c *gin.Context) {
	var req helpers.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateMeHandler", err)
		return
	}

	user, err := h.service.UpdateMe(c.Request.Context(), helpers.PrincipalFrom(c), req.ToModel())
	if err != nil {
		helpers.RespondError(c, "UpdateMeHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile updated successfully")
	helpers.LogSuccess("UpdateMeHandler", "profile updated successfully", map[string]any{"user_id": user.ID})
}
