package sweeper

import (
	"context"
	"time"

	"github.com/rickscode/SabaySell-sub001/utils"
)

// AuctionCloser ends due auctions and reports how many it transitioned.
type AuctionCloser interface {
	CloseDue(ctx context.Context, now time.Time) (int, error)
}

// BoostExpirer expires due boosts and reports how many it transitioned.
type BoostExpirer interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

// Report summarizes one sweep pass.
type Report struct {
	BoostsExpired int
	AuctionsEnded int
}

// Sweeper reconciles time-bounded records against the current time. It is a
// pure function of "now" versus stored deadlines: all transitions happen
// through row-scoped compare-and-sets in the services, so overlapping sweeps
// and concurrent activations never double-apply.
type Sweeper struct {
	auctions AuctionCloser
	boosts   BoostExpirer
	clock    func() time.Time
}

// New creates a Sweeper over the given services
func New(auctions AuctionCloser, boosts BoostExpirer) *Sweeper {
	return &Sweeper{
		auctions: auctions,
		boosts:   boosts,
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

// Run performs one sweep pass. A failure on one side does not stop the
// other: the sweep is periodic, anything missed is picked up next pass.
func (s *Sweeper) Run(ctx context.Context) Report {
	now := s.clock()
	var report Report

	ended, err := s.auctions.CloseDue(ctx, now)
	if err != nil {
		utils.Error("sweeper: failed to close due auctions", map[string]any{"error": err.Error()})
	}
	report.AuctionsEnded = ended

	expired, err := s.boosts.SweepExpired(ctx, now)
	if err != nil {
		utils.Error("sweeper: failed to expire boosts", map[string]any{"error": err.Error()})
	}
	report.BoostsExpired = expired

	if report.AuctionsEnded > 0 || report.BoostsExpired > 0 {
		utils.Info("sweep completed", map[string]any{
			"auctions_ended": report.AuctionsEnded,
			"boosts_expired": report.BoostsExpired,
		})
	}
	return report
}
