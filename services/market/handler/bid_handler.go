package handler

import (
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListBidsHandler handles GET /bids
func (h *MarketHandler) ListBidsHandler(c *gin.Context) {
	bids, err := h.service.ListBids(c.Request.Context(), helpers.PrincipalFrom(c))
	if err != nil {
		helpers.RespondError(c, "ListBidsHandler", err, nil)
		return
	}

	if bids == nil {
		bids = []model.BidView{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{"count": len(bids)})
}

// GetBidHandler handles GET /bids/:id
func (h *MarketHandler) GetBidHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetBidHandler")
	if !ok {
		return
	}

	bid, err := h.service.GetBid(c.Request.Context(), helpers.PrincipalFrom(c), id)
	if err != nil {
		helpers.RespondError(c, "GetBidHandler", err, map[string]any{"bid_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid retrieved successfully")
	helpers.LogSuccess("GetBidHandler", "bid retrieved successfully", map[string]any{"bid_id": id})
}

// RecordBidHandler handles POST /bids
func (h *MarketHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	bid, err := h.service.PlaceBid(c.Request.Context(), p, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "RecordBidHandler", err, map[string]any{
			"auction_id": req.AuctionID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": req.AuctionID,
		"user_id":    p.ID,
		"amount":     bid.Amount,
	})
}

// UpdateBidHandler handles PUT /bids/:id
func (h *MarketHandler) UpdateBidHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "UpdateBidHandler")
	if !ok {
		return
	}

	var req helpers.BidUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	bid, err := h.service.UpdateBid(c.Request.Context(), helpers.PrincipalFrom(c), id, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "UpdateBidHandler", err, map[string]any{"bid_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{"bid_id": id})
}

// DeleteBidHandler handles DELETE /bids/:id
func (h *MarketHandler) DeleteBidHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "DeleteBidHandler")
	if !ok {
		return
	}

	if err := h.service.DeleteBid(c.Request.Context(), helpers.PrincipalFrom(c), id); err != nil {
		helpers.RespondError(c, "DeleteBidHandler", err, map[string]any{"bid_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "bid deleted successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{"bid_id": id})
}
