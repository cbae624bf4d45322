package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rickscode/SabaySell-sub001/internal/marketerrors"
	model "github.com/rickscode/SabaySell-sub001/internal/models"
)

// AuctionStore defines the auction persistence contract. Mutation goes
// through UpdateAuction, a row-scoped compare-and-set keyed by the version
// the caller read: it reports false when another writer committed first.
type AuctionStore interface {
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	UpdateAuction(ctx context.Context, updated model.Auction, expectedVersion int64) (bool, error)
	ListDueAuctions(ctx context.Context, now time.Time) ([]model.Auction, error)
}

// BoostStore defines the boost persistence contract. PaymentReference is
// unique; ActivateBoost and ExpireBoost are status-guarded compare-and-sets,
// so concurrent duplicate activations and sweeps cannot double-apply.
type BoostStore interface {
	CreateBoost(ctx context.Context, boost model.Boost) error
	GetBoostByReference(ctx context.Context, paymentReference string) (model.Boost, error)
	ActivateBoost(ctx context.Context, paymentReference string, startsAt, endsAt time.Time) (bool, error)
	ListExpiredActive(ctx context.Context, now time.Time) ([]model.Boost, error)
	ExpireBoost(ctx context.Context, boostID string) (bool, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore
// and BoostStore. It honors the same compare-and-set semantics as the
// Postgres implementation and is the default store in development.
type MemoryRepo struct {
	mu          sync.RWMutex
	auctions    map[string]model.Auction // key: auctionID
	boosts      map[string]model.Boost   // key: boostID
	boostsByRef map[string]string        // key: paymentReference -> boostID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:    make(map[string]model.Auction),
		boosts:      make(map[string]model.Boost),
		boostsByRef: make(map[string]string),
	}
}

// GetAuction returns the current state of an auction
func (r *MemoryRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// UpdateAuction commits the updated auction only if the stored version still
// matches expectedVersion. Returns false when a concurrent writer won.
func (r *MemoryRepo) UpdateAuction(ctx context.Context, updated model.Auction, expectedVersion int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.auctions[updated.AuctionID]
	if !ok {
		return false, fmt.Errorf("update auction %s: %w", updated.AuctionID, marketerrors.ErrAuctionNotFound)
	}
	if current.Version != expectedVersion {
		return false, nil
	}

	updated.Version = expectedVersion + 1
	r.auctions[updated.AuctionID] = updated
	return true, nil
}

// ListDueAuctions returns active auctions whose ends_at has passed
func (r *MemoryRepo) ListDueAuctions(ctx context.Context, now time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []model.Auction
	for _, a := range r.auctions {
		if a.Status == model.AuctionActive && !now.Before(a.EndsAt) {
			due = append(due, a)
		}
	}
	return due, nil
}

// CreateBoost stores a new pending boost. The payment reference is unique:
// a second boost carrying the same reference is rejected.
func (r *MemoryRepo) CreateBoost(ctx context.Context, boost model.Boost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.boostsByRef[boost.PaymentReference]; exists {
		return fmt.Errorf("create boost for reference %s: %w", boost.PaymentReference, marketerrors.ErrDuplicateRef)
	}

	r.boosts[boost.BoostID] = boost
	r.boostsByRef[boost.PaymentReference] = boost.BoostID
	return nil
}

// GetBoostByReference looks a boost up by its payment reference
func (r *MemoryRepo) GetBoostByReference(ctx context.Context, paymentReference string) (model.Boost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.boostsByRef[paymentReference]
	if !ok {
		return model.Boost{}, fmt.Errorf("get boost for reference %s: %w", paymentReference, marketerrors.ErrBoostNotFound)
	}
	return r.boosts[id], nil
}

// ActivateBoost transitions a pending boost to active, setting its window.
// The status guard makes the transition happen at most once: a duplicate
// activation observes false and re-reads.
func (r *MemoryRepo) ActivateBoost(ctx context.Context, paymentReference string, startsAt, endsAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.boostsByRef[paymentReference]
	if !ok {
		return false, fmt.Errorf("activate boost for reference %s: %w", paymentReference, marketerrors.ErrBoostNotFound)
	}

	b := r.boosts[id]
	if b.Status != model.BoostPending {
		return false, nil
	}

	b.Status = model.BoostActive
	b.StartsAt = &startsAt
	b.EndsAt = &endsAt
	r.boosts[id] = b
	return true, nil
}

// ListExpiredActive returns active boosts whose window has closed
func (r *MemoryRepo) ListExpiredActive(ctx context.Context, now time.Time) ([]model.Boost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var expired []model.Boost
	for _, b := range r.boosts {
		if b.Status == model.BoostActive && b.EndsAt != nil && b.EndsAt.Before(now) {
			expired = append(expired, b)
		}
	}
	return expired, nil
}

// ExpireBoost transitions an active boost to expired. Returns false if the
// boost already left the active state, so concurrent sweeps count each
// expiry exactly once.
func (r *MemoryRepo) ExpireBoost(ctx context.Context, boostID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.boosts[boostID]
	if !ok {
		return false, fmt.Errorf("expire boost %s: %w", boostID, marketerrors.ErrBoostNotFound)
	}
	if b.Status != model.BoostActive {
		return false, nil
	}

	b.Status = model.BoostExpired
	r.boosts[boostID] = b
	return true, nil
}

// AddAuction seeds an auction into the repository. This method is intended
// for development seeding and tests only.
func (r *MemoryRepo) AddAuction(a model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.AuctionID] = a
}
