package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rickscode/SabaySell-sub001/internal/marketerrors"
	model "github.com/rickscode/SabaySell-sub001/internal/models"
	"github.com/rickscode/SabaySell-sub001/utils"
)

type BoostServiceInterface interface {
	RecordPendingBoost(ctx context.Context, listingID, userID, paymentReference string, durationDays int) (model.Boost, error)
}

// SessionLookup extracts the principal the authorization gate resolved for
// this request.
type SessionLookup func(c *gin.Context) (*model.Session, bool)

// PurchaseBoostRequest records a boost purchase intent. The payment
// reference is issued by the payment provider when the buyer initiates the
// transaction; duration falls back to the configured default when omitted.
type PurchaseBoostRequest struct {
	ListingID        string `json:"listing_id" binding:"required"`
	PaymentReference string `json:"payment_reference" binding:"required"`
	DurationDays     int    `json:"duration_days" binding:"omitempty,gt=0"`
}

type BoostResponse struct {
	BoostID          string  `json:"boost_id"`
	ListingID        string  `json:"listing_id"`
	PaymentReference string  `json:"payment_reference"`
	DurationDays     int     `json:"duration_days"`
	AmountKHR        float64 `json:"amount_khr"`
	Status           string  `json:"status"`
}

type BoostHandler struct {
	service             BoostServiceInterface
	session             SessionLookup
	defaultDurationDays int
}

func NewBoostHandler(service BoostServiceInterface, session SessionLookup, defaultDurationDays int) *BoostHandler {
	return &BoostHandler{service: service, session: session, defaultDurationDays: defaultDurationDays}
}

// PurchaseBoostHandler handles POST /boosts
func (h *BoostHandler) PurchaseBoostHandler(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok || !sess.Live(time.Now().UTC()) {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("authentication required"), "authentication required")
		return
	}

	var req PurchaseBoostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		wrappedErr := fmt.Errorf("invalid request payload: %w", err)
		utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
		utils.Warn("PurchaseBoostHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	days := req.DurationDays
	if days == 0 {
		days = h.defaultDurationDays
	}

	b, err := h.service.RecordPendingBoost(c.Request.Context(), req.ListingID, sess.UserID, req.PaymentReference, days)
	if err != nil {
		status, message := mapBoostError(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PurchaseBoostHandler: failed to record boost", map[string]any{
			"listing_id": req.ListingID,
			"user_id":    sess.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := BoostResponse{
		BoostID:          b.BoostID,
		ListingID:        b.ListingID,
		PaymentReference: b.PaymentReference,
		DurationDays:     b.DurationDays,
		AmountKHR:        b.AmountKHR,
		Status:           string(b.Status),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "boost purchase recorded")
	utils.Info("PurchaseBoostHandler: boost purchase recorded", map[string]any{
		"boost_id":   b.BoostID,
		"listing_id": b.ListingID,
		"user_id":    sess.UserID,
		"amount_khr": b.AmountKHR,
	})
}

// mapBoostError maps domain/service errors to HTTP status code and message
func mapBoostError(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrInvalidBoost):
		return http.StatusBadRequest, "invalid boost details"
	case errors.Is(err, marketerrors.ErrDuplicateRef):
		return http.StatusConflict, "payment reference already recorded"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
