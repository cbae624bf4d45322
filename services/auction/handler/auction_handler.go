package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "github.com/rickscode/SabaySell-sub001/internal/models"
	"github.com/rickscode/SabaySell-sub001/services/auction/helpers"
	"github.com/rickscode/SabaySell-sub001/utils"
)

type AuctionServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Bid, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
}

// SessionLookup extracts the principal the authorization gate resolved for
// this request.
type SessionLookup func(c *gin.Context) (*model.Session, bool)

type AuctionHandler struct {
	service AuctionServiceInterface
	session SessionLookup
}

func NewAuctionHandler(service AuctionServiceInterface, session SessionLookup) *AuctionHandler {
	return &AuctionHandler{service: service, session: session}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids. Bid submission is
// an authenticated call: the bidder identity comes from the session, never
// from the request body.
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok || !sess.Live(time.Now().UTC()) {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("authentication required"), "authentication required")
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	bid, err := h.service.PlaceBid(c.Request.Context(), auctionID, sess.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"bidder_id":  sess.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid accepted")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := helpers.AuctionResponse{
		AuctionID:       a.AuctionID,
		ListingID:       a.ListingID,
		StartPrice:      a.StartPrice,
		CurrentPrice:    a.CurrentPrice,
		MinIncrement:    a.MinIncrement,
		TotalBids:       a.TotalBids,
		LeadingBidderID: a.LeadingBidderID,
		EndsAt:          a.EndsAt.UTC().Format(time.RFC3339),
		Status:          string(a.Status),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction retrieved successfully")
}
