package models

import "time"

// AuctionStatus enumerates the lifecycle states of an auction.
type AuctionStatus string

const (
	AuctionScheduled AuctionStatus = "scheduled"
	AuctionActive    AuctionStatus = "active"
	AuctionEnded     AuctionStatus = "ended"
	AuctionCancelled AuctionStatus = "cancelled"
)

// BoostStatus enumerates the lifecycle states of a listing boost.
type BoostStatus string

const (
	BoostPending BoostStatus = "pending"
	BoostActive  BoostStatus = "active"
	BoostExpired BoostStatus = "expired"
	// BoostFailed is terminal like expired. Nothing in this service writes
	// it; a payment-failure reconciliation job marks abandoned pending
	// boosts failed directly in the store.
	BoostFailed BoostStatus = "failed"
)

// Auction represents a time-boxed auction attached to a listing.
// Version is the optimistic concurrency token: every committed mutation
// bumps it, and writers must present the version they read.
type Auction struct {
	AuctionID       string        `json:"auction_id"`
	ListingID       string        `json:"listing_id"`
	OwnerID         string        `json:"owner_id"`
	StartPrice      float64       `json:"start_price"`
	CurrentPrice    float64       `json:"current_price"`
	MinIncrement    float64       `json:"min_increment"`
	TotalBids       int           `json:"total_bids"`
	LeadingBidderID *string       `json:"leading_bidder_id,omitempty"`
	EndsAt          time.Time     `json:"ends_at"`
	Extensions      int           `json:"extensions"`
	Status          AuctionStatus `json:"status"`
	Version         int64         `json:"-"`
}

// Boost represents a paid, time-bounded promotion of a listing.
// PaymentReference is externally issued and unique; it is the idempotency
// key for activation.
type Boost struct {
	BoostID          string      `json:"boost_id"`
	ListingID        string      `json:"listing_id"`
	UserID           string      `json:"user_id"`
	PaymentReference string      `json:"payment_reference"`
	DurationDays     int         `json:"duration_days"`
	AmountKHR        float64     `json:"amount_khr"`
	Status           BoostStatus `json:"status"`
	StartsAt         *time.Time  `json:"starts_at,omitempty"`
	EndsAt           *time.Time  `json:"ends_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// Bid represents an accepted bid on an auction.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the principal shape resolved by the identity collaborator.
// The core only reads it; it never mutates session state.
type Session struct {
	UserID string    `json:"user_id"`
	Expiry time.Time `json:"expiry"`
}

// Live reports whether the session is still valid at the given instant.
func (s *Session) Live(now time.Time) bool {
	return s != nil && s.UserID != "" && now.Before(s.Expiry)
}
