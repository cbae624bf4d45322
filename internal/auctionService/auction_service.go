package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rickscode/SabaySell-sub001/internal/marketerrors"
	"github.com/rickscode/SabaySell-sub001/internal/models"
	"github.com/rickscode/SabaySell-sub001/internal/notify"
	"github.com/rickscode/SabaySell-sub001/internal/obs"
	"github.com/rickscode/SabaySell-sub001/internal/repository"
	"github.com/rickscode/SabaySell-sub001/utils"
)

// maxBidAttempts bounds the re-read-and-recheck loop after a lost
// compare-and-set. One retry is enough: a second loss means heavy contention
// and the caller gets a retryable conflict instead of spinning.
const maxBidAttempts = 2

// maxExtensions caps anti-snipe extensions at one per auction.
const maxExtensions = 1

// AuctionService owns per-auction bid acceptance, anti-snipe extension and
// closing. All cross-request state lives in the store; concurrent bids are
// linearized through its versioned compare-and-set.
type AuctionService struct {
	store    repository.AuctionStore
	notifier notify.Notifier
	grace    time.Duration
	clock    func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore, notifier notify.Notifier, grace time.Duration) *AuctionService {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &AuctionService{
		store:    store,
		notifier: notifier,
		grace:    grace,
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

// PlaceBid validates and applies a bid against the auction's committed state.
// Preconditions are checked in order, first failure wins: the auction must be
// active and not past its deadline, the bidder must not be the listing owner,
// and the amount must clear current price plus the minimum increment. On a
// lost compare-and-set the bid is re-checked against the winner's committed
// price, so a raced losing bid is reported as too low, never silently
// dropped.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (models.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", marketerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}

	for attempt := 0; attempt < maxBidAttempts; attempt++ {
		a, err := s.store.GetAuction(ctx, auctionID)
		if err != nil {
			if errors.Is(err, marketerrors.ErrAuctionNotFound) {
				obs.BidsRejected.WithLabelValues("auction_closed").Inc()
				return models.Bid{}, fmt.Errorf("service: %w - auction %s does not exist", marketerrors.ErrAuctionClosed, auctionID)
			}
			return models.Bid{}, fmt.Errorf("service: failed to read auction %s: %w", auctionID, err)
		}

		now := s.clock()
		if a.Status == models.AuctionActive && !now.Before(a.EndsAt) {
			a = s.closeExpired(ctx, a)
		}
		if a.Status != models.AuctionActive {
			obs.BidsRejected.WithLabelValues("auction_closed").Inc()
			return models.Bid{}, fmt.Errorf("service: %w - auction %s is %s", marketerrors.ErrAuctionClosed, auctionID, a.Status)
		}
		if bidderID == a.OwnerID {
			obs.BidsRejected.WithLabelValues("self_bid").Inc()
			return models.Bid{}, fmt.Errorf("service: %w - auction %s", marketerrors.ErrSelfBidForbidden, auctionID)
		}
		if amount < a.CurrentPrice+a.MinIncrement {
			obs.BidsRejected.WithLabelValues("bid_too_low").Inc()
			return models.Bid{}, fmt.Errorf("service: %w - current price %.2f, minimum increment %.2f",
				marketerrors.ErrBidTooLow, a.CurrentPrice, a.MinIncrement)
		}

		updated := a
		updated.CurrentPrice = amount
		bidder := bidderID
		updated.LeadingBidderID = &bidder
		updated.TotalBids++
		if s.grace > 0 && a.EndsAt.Sub(now) <= s.grace && a.Extensions < maxExtensions {
			updated.EndsAt = a.EndsAt.Add(s.grace)
			updated.Extensions = a.Extensions + 1
		}

		ok, err := s.store.UpdateAuction(ctx, updated, a.Version)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to commit bid on auction %s: %w", auctionID, err)
		}
		if !ok {
			// Lost the race: loop re-reads the winner's committed price
			// before re-checking preconditions.
			continue
		}

		if a.LeadingBidderID != nil && *a.LeadingBidderID != bidderID {
			event := notify.OutbidEvent{
				AuctionID:     auctionID,
				OutbidUserID:  *a.LeadingBidderID,
				NewPrice:      amount,
				PreviousPrice: a.CurrentPrice,
			}
			go s.notifier.NotifyOutbid(event)
		}

		obs.BidsAccepted.Inc()
		return models.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: now,
		}, nil
	}

	obs.BidsRejected.WithLabelValues("conflict").Inc()
	return models.Bid{}, fmt.Errorf("service: %w - auction %s", marketerrors.ErrBidConflict, auctionID)
}

// GetAuction returns the auction's current state. A due auction is closed
// on read, so callers always observe a frozen record once the clock has
// passed ends_at.
func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidBid)
	}

	a, err := s.store.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	if a.Status == models.AuctionActive && !s.clock().Before(a.EndsAt) {
		a = s.closeExpired(ctx, a)
	}
	return a, nil
}

// CloseDue ends every active auction whose deadline has passed and returns
// the number of auctions it transitioned. Each close is a row-scoped
// compare-and-set, so it is safe to run concurrently with bidding: an
// auction that receives an anti-snipe extension mid-sweep is simply skipped.
func (s *AuctionService) CloseDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.store.ListDueAuctions(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("service: failed to list due auctions: %w", err)
	}

	closed := 0
	for _, a := range due {
		ended := a
		ended.Status = models.AuctionEnded
		ok, err := s.store.UpdateAuction(ctx, ended, a.Version)
		if err != nil {
			return closed, fmt.Errorf("service: failed to close auction %s: %w", a.AuctionID, err)
		}
		if ok {
			closed++
			obs.AuctionsEnded.Inc()
		}
	}
	return closed, nil
}

// closeExpired attempts the active -> ended transition and returns the
// auction state to check preconditions against. A lost compare-and-set means
// another writer got there first (a close or a late extension), so the
// committed state is re-read.
func (s *AuctionService) closeExpired(ctx context.Context, a models.Auction) models.Auction {
	ended := a
	ended.Status = models.AuctionEnded
	ok, err := s.store.UpdateAuction(ctx, ended, a.Version)
	if err != nil {
		utils.Warn("failed to close expired auction", map[string]any{
			"auction_id": a.AuctionID,
			"error":      err.Error(),
		})
		return a
	}
	if ok {
		obs.AuctionsEnded.Inc()
		return ended
	}

	refreshed, err := s.store.GetAuction(ctx, a.AuctionID)
	if err != nil {
		return a
	}
	return refreshed
}
