package integrationtests

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "github.com/rickscode/SabaySell-sub001/internal/models"
	"github.com/rickscode/SabaySell-sub001/internal/repository"
	"github.com/rickscode/SabaySell-sub001/services/auction/helpers"
	payments "github.com/rickscode/SabaySell-sub001/services/payments/helpers"
)

func seedActiveAuction(repo *repository.MemoryRepo) {
	repo.AddAuction(model.Auction{
		AuctionID:    "auction1",
		ListingID:    "listing1",
		OwnerID:      "seller1",
		StartPrice:   100,
		CurrentPrice: 100,
		MinIncrement: 5,
		EndsAt:       time.Now().UTC().Add(time.Hour),
		Status:       model.AuctionActive,
	})
}

// Bidding flow over HTTP
func TestBiddingFlow(t *testing.T) {
	router, repo := SetupTestRouter(seedActiveAuction)

	// Unauthenticated bid submission is rejected.
	w := ExecuteRequest(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{Amount: 105}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	auth := map[string]string{"Cookie": SessionCookie(t, "buyer1")}

	// Below increment: 100 + 5 > 104.
	w = ExecuteRequest(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{Amount: 104}, auth)
	require.Equal(t, http.StatusConflict, w.Code)

	// Exactly at increment: accepted.
	w = ExecuteRequest(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{Amount: 105}, auth)
	require.Equal(t, http.StatusCreated, w.Code)
	data := ParseData(t, w)
	require.Equal(t, 105.0, data["amount"])
	require.Equal(t, "buyer1", data["bidder_id"])

	// The owner cannot bid on their own listing.
	w = ExecuteRequest(t, router, http.MethodPost, "/auctions/auction1/bids",
		helpers.PlaceBidRequest{Amount: 110}, map[string]string{"Cookie": SessionCookie(t, "seller1")})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Public auction view reflects the committed bid.
	w = ExecuteRequest(t, router, http.MethodGet, "/auctions/auction1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = ParseData(t, w)
	require.Equal(t, 105.0, data["current_price"])
	require.Equal(t, 1.0, data["total_bids"])
	require.Equal(t, "buyer1", data["leading_bidder_id"])

	a, err := repo.GetAuction(context.Background(), "auction1")
	require.NoError(t, err)
	require.Equal(t, 1, a.TotalBids)
}

// Boost purchase and payment webhook flow
func TestBoostPaymentFlow(t *testing.T) {
	router, repo := SetupTestRouter(nil)
	auth := map[string]string{"Cookie": SessionCookie(t, "user1")}

	// Purchase intent recorded as pending.
	w := ExecuteRequest(t, router, http.MethodPost, "/boosts",
		map[string]any{"listing_id": "listing1", "payment_reference": "PR1"}, auth)
	require.Equal(t, http.StatusCreated, w.Code)
	data := ParseData(t, w)
	require.Equal(t, "pending", data["status"])
	require.Equal(t, 14350.0, data["amount_khr"]) // 0.50 USD * 4100 KHR * 7 days

	event := payments.WebhookEvent{
		EventType:        "payment.success",
		PaymentReference: "PR1",
		Amount:           14350,
		Currency:         "KHR",
		Status:           "completed",
	}

	// A tampered signature is rejected before any state is touched.
	body, _ := SignedWebhook(t, event)
	w = ExecuteRequest(t, router, http.MethodPost, "/webhooks/bakong", body,
		map[string]string{payments.SignatureHeader: "deadbeef"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Verified payment activates the boost.
	body, headers := SignedWebhook(t, event)
	w = ExecuteRequest(t, router, http.MethodPost, "/webhooks/bakong", body, headers)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "activated", ParseData(t, w)["result"])

	b, err := repo.GetBoostByReference(context.Background(), "PR1")
	require.NoError(t, err)
	require.Equal(t, model.BoostActive, b.Status)
	require.NotNil(t, b.StartsAt)
	require.Equal(t, b.StartsAt.AddDate(0, 0, 7), *b.EndsAt)
	firstStart := *b.StartsAt

	// Replaying the identical webhook acknowledges without mutating.
	w = ExecuteRequest(t, router, http.MethodPost, "/webhooks/bakong", body, headers)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "already_processed", ParseData(t, w)["result"])

	b, err = repo.GetBoostByReference(context.Background(), "PR1")
	require.NoError(t, err)
	require.Equal(t, firstStart, *b.StartsAt)

	// An unknown reference is a client error the provider should fix.
	body, headers = SignedWebhook(t, payments.WebhookEvent{
		EventType:        "payment.success",
		PaymentReference: "PR-unknown",
		Status:           "completed",
	})
	w = ExecuteRequest(t, router, http.MethodPost, "/webhooks/bakong", body, headers)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Authorization gate redirects
func TestAuthorizationGate(t *testing.T) {
	router, _ := SetupTestRouter(seedActiveAuction)

	// Protected path without a session redirects to login, preserving the
	// original path.
	w := ExecuteRequest(t, router, http.MethodPost, "/boosts",
		map[string]any{"listing_id": "listing1", "payment_reference": "PR1"}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login?redirectTo=%2Fboosts", w.Header().Get("Location"))

	// Public content is served without a session.
	w = ExecuteRequest(t, router, http.MethodGet, "/auctions/auction1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

// Webhook liveness probe
func TestWebhookHealth(t *testing.T) {
	router, _ := SetupTestRouter(nil)

	w := ExecuteRequest(t, router, http.MethodGet, "/webhooks/bakong", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}
