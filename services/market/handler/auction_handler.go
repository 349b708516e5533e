package handler

import (
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListAuctionsHandler handles GET /auctions
func (h *MarketHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context(), helpers.PrincipalFrom(c))
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}

	if auctions == nil {
		auctions = []model.AuctionView{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{"count": len(auctions)})
}

// GetAuctionHandler handles GET /auctions/:id
func (h *MarketHandler) GetAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetAuctionHandler")
	if !ok {
		return
	}

	auction, err := h.service.GetAuction(c.Request.Context(), helpers.PrincipalFrom(c), id)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{"auction_id": id})
}

// CreateAuctionHandler handles POST /auctions
func (h *MarketHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	auction, err := h.service.CreateAuction(c.Request.Context(), p, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{"auction_id": auction.ID})
}

// UpdateAuctionHandler handles PUT /auctions/:id
func (h *MarketHandler) UpdateAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "UpdateAuctionHandler")
	if !ok {
		return
	}

	var req helpers.AuctionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	auction, err := h.service.UpdateAuction(c.Request.Context(), helpers.PrincipalFrom(c), id, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "UpdateAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": id,
		"state":      auction.State,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:id
func (h *MarketHandler) DeleteAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "DeleteAuctionHandler")
	if !ok {
		return
	}

	if err := h.service.DeleteAuction(c.Request.Context(), helpers.PrincipalFrom(c), id); err != nil {
		helpers.RespondError(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{"auction_id": id})
}
