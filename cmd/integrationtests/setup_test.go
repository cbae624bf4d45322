package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	auction "github.com/rickscode/SabaySell-sub001/internal/auctionService"
	"github.com/rickscode/SabaySell-sub001/internal/authgate"
	boost "github.com/rickscode/SabaySell-sub001/internal/boostService"
	"github.com/rickscode/SabaySell-sub001/internal/config"
	"github.com/rickscode/SabaySell-sub001/internal/notify"
	"github.com/rickscode/SabaySell-sub001/internal/repository"
	"github.com/rickscode/SabaySell-sub001/internal/server"
	"github.com/rickscode/SabaySell-sub001/services/payments/helpers"
)

const (
	testWebhookSecret = "integration-webhook-secret"
	testJWTSecret     = "integration-session-secret"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing and returns the repo for direct state assertions.
func SetupTestRouter(seed func(*repository.MemoryRepo)) (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Environment:       "production",
		WebhookSecret:     testWebhookSecret,
		SessionJWTSecret:  testJWTSecret,
		BidGraceWindow:    time.Minute,
		BoostDurationDays: 7,
		BoostPriceUSD:     0.50,
		ExchangeRateKHR:   4100,
	}

	repo := repository.NewMemoryRepo()
	if seed != nil {
		seed(repo)
	}

	auctionSvc := auction.NewAuctionService(repo, notify.LogNotifier{}, cfg.BidGraceWindow)
	boostSvc := boost.NewBoostService(repo, boost.Pricing{
		PriceUSDPerDay:  cfg.BoostPriceUSD,
		ExchangeRateKHR: cfg.ExchangeRateKHR,
	})
	resolver := authgate.NewJWTResolver(cfg.SessionJWTSecret)

	return server.SetupRouter(auctionSvc, boostSvc, resolver, cfg), repo
}

// SessionCookie returns a session cookie value for the given user.
func SessionCookie(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "session=" + signed
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// SignedWebhook marshals the event and returns the body with its signature
// header, the way the payment provider sends it.
func SignedWebhook(t *testing.T, event helpers.WebhookEvent) ([]byte, map[string]string) {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body, map[string]string{helpers.SignatureHeader: helpers.ComputeSignature(body, testWebhookSecret)}
}

// ParseData unmarshals the response envelope and returns its data object.
func ParseData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}
