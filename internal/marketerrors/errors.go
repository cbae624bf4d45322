package marketerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBoostNotFound   = errors.New("boost not found")
	ErrDuplicateRef    = errors.New("payment reference already recorded")
)

// Bidding business logic errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrAuctionClosed    = errors.New("auction closed")
	ErrSelfBidForbidden = errors.New("owner may not bid on own listing")
	ErrBidConflict      = errors.New("concurrent bid conflict, retry with refreshed state")
)

// Boost business logic errors
var (
	ErrInvalidBoost        = errors.New("invalid boost request")
	ErrBoostNotActivatable = errors.New("boost is not in an activatable state")
)
