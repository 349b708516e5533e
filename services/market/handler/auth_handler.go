package handler

import (
	"net/http"

	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, err := h.identity.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, token, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": token.UserID})
}

// RegisterHandler handles POST /auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.identity.Register(c.Request.Context(), req.ToModel())
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{"user_id": user.ID})
}

// VerifyTokenHandler handles GET /auth/verify_token
func (h *AuthHandler) VerifyTokenHandler(c *gin.Context) {
	p := helpers.PrincipalFrom(c)
	if p == nil {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token", "not authenticated")
		return
	}
	utils.JSONResponse(c, http.StatusOK, p, "token is valid")
}
