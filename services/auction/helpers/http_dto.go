package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID       string  `json:"auction_id"`
	ListingID       string  `json:"listing_id"`
	StartPrice      float64 `json:"start_price"`
	CurrentPrice    float64 `json:"current_price"`
	MinIncrement    float64 `json:"min_increment"`
	TotalBids       int     `json:"total_bids"`
	LeadingBidderID *string `json:"leading_bidder_id,omitempty"`
	EndsAt          string  `json:"ends_at"`
	Status          string  `json:"status"`
}
