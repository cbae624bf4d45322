package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickscode/SabaySell-sub001/internal/marketerrors"
	model "github.com/rickscode/SabaySell-sub001/internal/models"
)

const pgUniqueViolation = "23505"

// PostgresRepo implements AuctionStore and BoostStore on a pgx connection
// pool. Compare-and-set is expressed as a conditional UPDATE: zero rows
// affected means another writer committed first.
type PostgresRepo struct {
	Pool *pgxpool.Pool
}

// NewPostgresRepo initializes a repository backed by a new connection pool
func NewPostgresRepo(ctx context.Context, connString string) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return &PostgresRepo{Pool: pool}, nil
}

// Close closes the underlying connection pool
func (r *PostgresRepo) Close() {
	r.Pool.Close()
}

// GetAuction returns the current state of an auction
func (r *PostgresRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	var a model.Auction
	err := r.Pool.QueryRow(ctx,
		`SELECT auction_id, listing_id, owner_id, start_price, current_price, min_increment,
		        total_bids, leading_bidder_id, ends_at, extensions, status, version
		 FROM auctions WHERE auction_id = $1`,
		auctionID).Scan(&a.AuctionID, &a.ListingID, &a.OwnerID, &a.StartPrice, &a.CurrentPrice,
		&a.MinIncrement, &a.TotalBids, &a.LeadingBidderID, &a.EndsAt, &a.Extensions, &a.Status, &a.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("failed to get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// UpdateAuction commits the updated auction only if the stored version still
// matches expectedVersion
func (r *PostgresRepo) UpdateAuction(ctx context.Context, updated model.Auction, expectedVersion int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE auctions
		 SET current_price = $2, min_increment = $3, total_bids = $4, leading_bidder_id = $5,
		     ends_at = $6, extensions = $7, status = $8, version = version + 1
		 WHERE auction_id = $1 AND version = $9`,
		updated.AuctionID, updated.CurrentPrice, updated.MinIncrement, updated.TotalBids,
		updated.LeadingBidderID, updated.EndsAt, updated.Extensions, updated.Status, expectedVersion)
	if err != nil {
		return false, fmt.Errorf("failed to update auction %s: %w", updated.AuctionID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListDueAuctions returns active auctions whose ends_at has passed
func (r *PostgresRepo) ListDueAuctions(ctx context.Context, now time.Time) ([]model.Auction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT auction_id, listing_id, owner_id, start_price, current_price, min_increment,
		        total_bids, leading_bidder_id, ends_at, extensions, status, version
		 FROM auctions WHERE status = 'active' AND ends_at <= $1`,
		now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due auctions: %w", err)
	}
	defer rows.Close()

	var due []model.Auction
	for rows.Next() {
		var a model.Auction
		if err := rows.Scan(&a.AuctionID, &a.ListingID, &a.OwnerID, &a.StartPrice, &a.CurrentPrice,
			&a.MinIncrement, &a.TotalBids, &a.LeadingBidderID, &a.EndsAt, &a.Extensions, &a.Status, &a.Version); err != nil {
			return nil, fmt.Errorf("failed to scan auction: %w", err)
		}
		due = append(due, a)
	}
	return due, rows.Err()
}

// CreateBoost inserts a new pending boost. The unique index on
// payment_reference rejects a duplicate purchase intent.
func (r *PostgresRepo) CreateBoost(ctx context.Context, boost model.Boost) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO boosts (boost_id, listing_id, user_id, payment_reference, duration_days,
		                     amount_khr, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		boost.BoostID, boost.ListingID, boost.UserID, boost.PaymentReference, boost.DurationDays,
		boost.AmountKHR, boost.Status, boost.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("create boost for reference %s: %w", boost.PaymentReference, marketerrors.ErrDuplicateRef)
		}
		return fmt.Errorf("failed to create boost: %w", err)
	}
	return nil
}

// GetBoostByReference looks a boost up by its payment reference
func (r *PostgresRepo) GetBoostByReference(ctx context.Context, paymentReference string) (model.Boost, error) {
	var b model.Boost
	err := r.Pool.QueryRow(ctx,
		`SELECT boost_id, listing_id, user_id, payment_reference, duration_days,
		        amount_khr, status, starts_at, ends_at, created_at
		 FROM boosts WHERE payment_reference = $1`,
		paymentReference).Scan(&b.BoostID, &b.ListingID, &b.UserID, &b.PaymentReference,
		&b.DurationDays, &b.AmountKHR, &b.Status, &b.StartsAt, &b.EndsAt, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Boost{}, fmt.Errorf("get boost for reference %s: %w", paymentReference, marketerrors.ErrBoostNotFound)
	}
	if err != nil {
		return model.Boost{}, fmt.Errorf("failed to get boost for reference %s: %w", paymentReference, err)
	}
	return b, nil
}

// ActivateBoost transitions a pending boost to active. The status predicate
// in the UPDATE is the at-most-once guard under concurrent duplicate
// webhooks.
func (r *PostgresRepo) ActivateBoost(ctx context.Context, paymentReference string, startsAt, endsAt time.Time) (bool, error) {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE boosts SET status = 'active', starts_at = $2, ends_at = $3
		 WHERE payment_reference = $1 AND status = 'pending'`,
		paymentReference, startsAt, endsAt)
	if err != nil {
		return false, fmt.Errorf("failed to activate boost %s: %w", paymentReference, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListExpiredActive returns active boosts whose window has closed
func (r *PostgresRepo) ListExpiredActive(ctx context.Context, now time.Time) ([]model.Boost, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT boost_id, listing_id, user_id, payment_reference, duration_days,
		        amount_khr, status, starts_at, ends_at, created_at
		 FROM boosts WHERE status = 'active' AND ends_at < $1`,
		now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired boosts: %w", err)
	}
	defer rows.Close()

	var expired []model.Boost
	for rows.Next() {
		var b model.Boost
		if err := rows.Scan(&b.BoostID, &b.ListingID, &b.UserID, &b.PaymentReference,
			&b.DurationDays, &b.AmountKHR, &b.Status, &b.StartsAt, &b.EndsAt, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan boost: %w", err)
		}
		expired = append(expired, b)
	}
	return expired, rows.Err()
}

// ExpireBoost transitions an active boost to expired
func (r *PostgresRepo) ExpireBoost(ctx context.Context, boostID string) (bool, error) {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE boosts SET status = 'expired' WHERE boost_id = $1 AND status = 'active'`,
		boostID)
	if err != nil {
		return false, fmt.Errorf("failed to expire boost %s: %w", boostID, err)
	}
	return tag.RowsAffected() == 1, nil
}
