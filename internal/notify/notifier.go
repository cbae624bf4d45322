package notify

import (
	"github.com/rickscode/SabaySell-sub001/utils"
)

// OutbidEvent describes a leader displaced by a newly accepted bid.
type OutbidEvent struct {
	AuctionID     string
	OutbidUserID  string
	NewPrice      float64
	PreviousPrice float64
}

// Notifier delivers outbid alerts. Delivery is fire-and-forget: the bidding
// engine never waits on it and never fails a bid because of it.
type Notifier interface {
	NotifyOutbid(event OutbidEvent)
}

// LogNotifier writes outbid events to the application log. The real
// deployment swaps in a push/email collaborator behind the same interface.
type LogNotifier struct{}

// NotifyOutbid logs the outbid event
func (LogNotifier) NotifyOutbid(event OutbidEvent) {
	utils.Info("outbid notification", map[string]any{
		"auction_id":     event.AuctionID,
		"outbid_user_id": event.OutbidUserID,
		"new_price":      event.NewPrice,
		"previous_price": event.PreviousPrice,
	})
}
