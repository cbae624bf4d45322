package boost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rickscode/SabaySell-sub001/internal/marketerrors"
	"github.com/rickscode/SabaySell-sub001/internal/models"
	"github.com/rickscode/SabaySell-sub001/internal/obs"
	"github.com/rickscode/SabaySell-sub001/internal/repository"
	"github.com/rickscode/SabaySell-sub001/utils"
)

// ActivationOutcome reports what an Activate call did.
type ActivationOutcome string

const (
	OutcomeActivated     ActivationOutcome = "activated"
	OutcomeAlreadyActive ActivationOutcome = "already_active"
	OutcomeNotFound      ActivationOutcome = "not_found"
)

// Pricing carries the externally supplied boost pricing knobs.
type Pricing struct {
	PriceUSDPerDay  float64
	ExchangeRateKHR float64
}

// BoostService owns boost state transitions, keyed by payment reference.
// Activation is idempotent: duplicate payment notifications for the same
// reference are acknowledged without re-applying the transition.
type BoostService struct {
	store   repository.BoostStore
	pricing Pricing
	clock   func() time.Time
}

// NewBoostService creates a new BoostService instance
func NewBoostService(store repository.BoostStore, pricing Pricing) *BoostService {
	return &BoostService{
		store:   store,
		pricing: pricing,
		clock:   func() time.Time { return time.Now().UTC() },
	}
}

// RecordPendingBoost records a purchase intent as a pending boost. The
// payment reference is externally issued; a duplicate reference is rejected
// by the store's uniqueness constraint.
func (s *BoostService) RecordPendingBoost(ctx context.Context, listingID, userID, paymentReference string, durationDays int) (models.Boost, error) {
	if listingID == "" || userID == "" || paymentReference == "" {
		return models.Boost{}, fmt.Errorf("service: %w - missing listingID, userID or paymentReference", marketerrors.ErrInvalidBoost)
	}
	if durationDays <= 0 {
		return models.Boost{}, fmt.Errorf("service: %w - non-positive duration", marketerrors.ErrInvalidBoost)
	}

	b := models.Boost{
		BoostID:          utils.GenerateID(),
		ListingID:        listingID,
		UserID:           userID,
		PaymentReference: paymentReference,
		DurationDays:     durationDays,
		AmountKHR:        s.pricing.PriceUSDPerDay * s.pricing.ExchangeRateKHR * float64(durationDays),
		Status:           models.BoostPending,
		CreatedAt:        s.clock(),
	}

	if err := s.store.CreateBoost(ctx, b); err != nil {
		return models.Boost{}, fmt.Errorf("service: failed to record boost for listing %s: %w", listingID, err)
	}
	return b, nil
}

// Activate transitions the referenced boost from pending to active. An
// already-active boost returns OutcomeAlreadyActive without touching its
// window: this is what makes duplicate payment webhooks harmless. Expired
// and failed boosts are never reactivated.
func (s *BoostService) Activate(ctx context.Context, paymentReference string) (ActivationOutcome, error) {
	if paymentReference == "" {
		return OutcomeNotFound, fmt.Errorf("service: %w - empty payment reference", marketerrors.ErrInvalidBoost)
	}

	b, err := s.store.GetBoostByReference(ctx, paymentReference)
	if err != nil {
		if errors.Is(err, marketerrors.ErrBoostNotFound) {
			return OutcomeNotFound, nil
		}
		return OutcomeNotFound, fmt.Errorf("service: failed to look up reference %s: %w", paymentReference, err)
	}

	switch b.Status {
	case models.BoostActive:
		return OutcomeAlreadyActive, nil
	case models.BoostExpired, models.BoostFailed:
		return OutcomeNotFound, fmt.Errorf("service: %w - boost %s is %s", marketerrors.ErrBoostNotActivatable, b.BoostID, b.Status)
	}

	now := s.clock()
	endsAt := now.AddDate(0, 0, b.DurationDays)
	ok, err := s.store.ActivateBoost(ctx, paymentReference, now, endsAt)
	if err != nil {
		return OutcomeNotFound, fmt.Errorf("service: failed to activate reference %s: %w", paymentReference, err)
	}
	if !ok {
		// Lost the status-guarded update: a concurrent duplicate webhook
		// activated first. Re-read to confirm and acknowledge.
		refreshed, err := s.store.GetBoostByReference(ctx, paymentReference)
		if err != nil {
			return OutcomeNotFound, fmt.Errorf("service: failed to re-read reference %s: %w", paymentReference, err)
		}
		if refreshed.Status == models.BoostActive {
			return OutcomeAlreadyActive, nil
		}
		return OutcomeNotFound, fmt.Errorf("service: %w - boost %s is %s", marketerrors.ErrBoostNotActivatable, refreshed.BoostID, refreshed.Status)
	}

	obs.BoostsActivated.Inc()
	utils.Info("boost activated", map[string]any{
		"payment_reference": paymentReference,
		"boost_id":          b.BoostID,
		"listing_id":        b.ListingID,
		"ends_at":           endsAt.Format(time.RFC3339),
	})
	return OutcomeActivated, nil
}

// SweepExpired expires every active boost whose window has closed and
// returns the number it transitioned. Each expiry is a row-scoped
// status-guarded update on a distinct row, so the sweep is safe to run
// concurrently with activation and with itself: a second pass finds nothing
// left to expire.
func (s *BoostService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	due, err := s.store.ListExpiredActive(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("service: failed to list expired boosts: %w", err)
	}

	expired := 0
	for _, b := range due {
		ok, err := s.store.ExpireBoost(ctx, b.BoostID)
		if err != nil {
			return expired, fmt.Errorf("service: failed to expire boost %s: %w", b.BoostID, err)
		}
		if ok {
			expired++
			obs.BoostsExpired.Inc()
		}
	}
	return expired, nil
}
