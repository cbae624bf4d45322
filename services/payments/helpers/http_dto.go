package helpers

// WebhookEvent is the payment provider's notification payload.
type WebhookEvent struct {
	EventType        string  `json:"event_type"`
	PaymentReference string  `json:"payment_reference"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
	Timestamp        string  `json:"timestamp"`
	Signature        string  `json:"signature,omitempty"`
}

// WebhookAck is the body returned to the provider for every processed
// notification. Non-error acknowledgments ("ignored", "pending",
// "already_processed") tell the sender not to retry.
type WebhookAck struct {
	Result           string `json:"result"`
	PaymentReference string `json:"payment_reference,omitempty"`
}
