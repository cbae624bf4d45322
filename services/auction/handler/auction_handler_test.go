package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rickscode/SabaySell-sub001/internal/marketerrors"
	model "github.com/rickscode/SabaySell-sub001/internal/models"
	"github.com/rickscode/SabaySell-sub001/services/auction/helpers"
)

func liveSession(userID string) *model.Session {
	return &model.Session{UserID: userID, Expiry: time.Now().Add(time.Hour)}
}

func sessionLookup(sess *model.Session) SessionLookup {
	return func(_ *gin.Context) (*model.Session, bool) {
		if sess == nil {
			return nil, false
		}
		return sess, true
	}
}

func setupAuctionRouter(service AuctionServiceInterface, sess *model.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuctionHandler(service, sessionLookup(sess))
	router := gin.New()
	router.POST("/auctions/:auction_id/bids", h.PlaceBidHandler)
	router.GET("/auctions/:auction_id", h.GetAuctionHandler)
	return router
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		session        *model.Session
		requestBody    any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "accepted_bid",
			session:     liveSession("buyer1"),
			requestBody: helpers.PlaceBidRequest{Amount: 105},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "buyer1", 105.0).
					Return(model.Bid{
						BidID:     uuid.NewString(),
						AuctionID: "auction1",
						BidderID:  "buyer1",
						Amount:    105.0,
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid accepted",
		},
		{
			name:           "no_session",
			session:        nil,
			requestBody:    helpers.PlaceBidRequest{Amount: 105},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "authentication required",
		},
		{
			name:           "invalid_json",
			session:        liveSession("buyer1"),
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_amount",
			session:        liveSession("buyer1"),
			requestBody:    map[string]any{},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "bid_too_low",
			session:     liveSession("buyer1"),
			requestBody: helpers.PlaceBidRequest{Amount: 104},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "buyer1", 104.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrBidTooLow))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:        "auction_closed",
			session:     liveSession("buyer1"),
			requestBody: helpers.PlaceBidRequest{Amount: 200},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "buyer1", 200.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrAuctionClosed))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction is closed",
		},
		{
			name:        "self_bid_forbidden",
			session:     liveSession("seller1"),
			requestBody: helpers.PlaceBidRequest{Amount: 200},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "seller1", 200.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrSelfBidForbidden))
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "owner may not bid on own listing",
		},
		{
			name:        "concurrent_conflict",
			session:     liveSession("buyer1"),
			requestBody: helpers.PlaceBidRequest{Amount: 200},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "buyer1", 200.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrBidConflict))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "concurrent bid conflict, please retry",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockAuctionServiceInterface(ctrl)
			tc.mockSetup(mockService)
			router := setupAuctionRouter(mockService, tc.session)

			var body []byte
			switch v := tc.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/auctions/auction1/bids", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.expectedStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "auction1", data["auction_id"])
				require.Equal(t, "buyer1", data["bidder_id"])
				require.Equal(t, 105.0, data["amount"])
				_, err := time.Parse(time.RFC3339, data["created_at"].(string))
				require.NoError(t, err)
			}
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := setupAuctionRouter(mockService, nil)

	t.Run("found", func(t *testing.T) {
		leader := "buyer1"
		mockService.EXPECT().
			GetAuction(gomock.Any(), "auction1").
			Return(model.Auction{
				AuctionID:       "auction1",
				ListingID:       "listing1",
				StartPrice:      100,
				CurrentPrice:    110,
				MinIncrement:    5,
				TotalBids:       2,
				LeadingBidderID: &leader,
				EndsAt:          time.Now().Add(time.Hour),
				Status:          model.AuctionActive,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions/auction1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, 110.0, data["current_price"])
		require.Equal(t, 2.0, data["total_bids"])
		require.Equal(t, "buyer1", data["leading_bidder_id"])
		require.Equal(t, "active", data["status"])
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().
			GetAuction(gomock.Any(), "missing").
			Return(model.Auction{}, fmt.Errorf("service: %w", marketerrors.ErrAuctionNotFound))

		req := httptest.NewRequest(http.MethodGet, "/auctions/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
