package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	boost "github.com/rickscode/SabaySell-sub001/internal/boostService"
	"github.com/rickscode/SabaySell-sub001/internal/marketerrors"
	"github.com/rickscode/SabaySell-sub001/internal/obs"
	"github.com/rickscode/SabaySell-sub001/services/payments/helpers"
	"github.com/rickscode/SabaySell-sub001/utils"
)

const (
	eventPaymentSuccess = "payment.success"
	statusCompleted     = "completed"
)

// BoostActivator is the slice of the boost lifecycle the gateway delegates to.
type BoostActivator interface {
	Activate(ctx context.Context, paymentReference string) (boost.ActivationOutcome, error)
}

// WebhookHandler authenticates and deduplicates inbound payment events and
// forwards them to the boost lifecycle. Idempotency lives downstream: a
// replayed notification reaches Activate and comes back as already-active,
// which is acknowledged with 200 so the provider stops retrying.
type WebhookHandler struct {
	activator     BoostActivator
	secret        string
	skipSignature bool
}

// NewWebhookHandler creates a gateway over the given activator.
// skipSignature is a development-only bypass: config.Load refuses to enable
// it outside development, signature verification is unconditional in
// production.
func NewWebhookHandler(activator BoostActivator, secret string, skipSignature bool) *WebhookHandler {
	return &WebhookHandler{activator: activator, secret: secret, skipSignature: skipSignature}
}

// HandleWebhook handles POST /webhooks/bakong
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		obs.WebhookEvents.WithLabelValues("read_error").Inc()
		utils.JSONError(c, http.StatusInternalServerError, err, "failed to read request body")
		return
	}

	if h.skipSignature {
		utils.Warn("webhook signature verification bypassed", map[string]any{"path": c.Request.URL.Path})
	} else if !helpers.VerifySignature(body, c.GetHeader(helpers.SignatureHeader), h.secret) {
		obs.WebhookEvents.WithLabelValues("unauthorized").Inc()
		utils.Warn("webhook signature mismatch", map[string]any{"path": c.Request.URL.Path})
		utils.JSONError(c, http.StatusUnauthorized, errors.New("signature mismatch"), "signature verification failed")
		return
	}

	var event helpers.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		obs.WebhookEvents.WithLabelValues("malformed").Inc()
		utils.JSONError(c, http.StatusBadRequest, err, "malformed payload")
		return
	}

	// Only successful-payment events are processed. Everything else is
	// acknowledged so the provider does not retry.
	if event.EventType != eventPaymentSuccess {
		obs.WebhookEvents.WithLabelValues("ignored").Inc()
		utils.JSONResponse(c, http.StatusOK, helpers.WebhookAck{Result: "ignored"}, "event type not processed")
		return
	}
	if event.Status != statusCompleted {
		obs.WebhookEvents.WithLabelValues("pending").Inc()
		utils.JSONResponse(c, http.StatusOK, helpers.WebhookAck{Result: "pending"}, "payment not completed")
		return
	}
	if event.PaymentReference == "" {
		obs.WebhookEvents.WithLabelValues("missing_reference").Inc()
		utils.JSONError(c, http.StatusBadRequest, errors.New("missing payment_reference"), "missing payment reference")
		return
	}

	outcome, err := h.activator.Activate(c.Request.Context(), event.PaymentReference)
	if err != nil {
		if errors.Is(err, marketerrors.ErrBoostNotActivatable) || errors.Is(err, marketerrors.ErrInvalidBoost) {
			obs.WebhookEvents.WithLabelValues("rejected").Inc()
			utils.JSONError(c, http.StatusBadRequest, err, "activation rejected")
			return
		}
		obs.WebhookEvents.WithLabelValues("error").Inc()
		utils.Error("webhook: activation failed", map[string]any{
			"payment_reference": event.PaymentReference,
			"error":             err.Error(),
		})
		utils.JSONError(c, http.StatusInternalServerError, err, "activation failed")
		return
	}

	ack := helpers.WebhookAck{PaymentReference: event.PaymentReference}
	switch outcome {
	case boost.OutcomeNotFound:
		obs.WebhookEvents.WithLabelValues("not_found").Inc()
		utils.JSONError(c, http.StatusBadRequest, errors.New("unknown payment reference"), "unknown payment reference")
	case boost.OutcomeAlreadyActive:
		obs.WebhookEvents.WithLabelValues("already_processed").Inc()
		ack.Result = "already_processed"
		utils.JSONResponse(c, http.StatusOK, ack, "payment already processed")
	default:
		obs.WebhookEvents.WithLabelValues("activated").Inc()
		ack.Result = "activated"
		utils.JSONResponse(c, http.StatusOK, ack, "boost activated")
		utils.Info("webhook: boost activated", map[string]any{"payment_reference": event.PaymentReference})
	}
}

// HealthHandler handles GET /webhooks/bakong, a static liveness payload.
// No state is touched.
func (h *WebhookHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
