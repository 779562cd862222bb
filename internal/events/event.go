package events

import (
	"time"

	"bomul-market/internal/models"
)

// Type identifies a marketplace state change
type Type string

const (
	BidUpdate     Type = "BID_UPDATE"
	AuctionClosed Type = "AUCTION_CLOSED"
	UserUpdate    Type = "USER_UPDATE"
	ReportUpdate  Type = "REPORT_UPDATE"
	ProductListed Type = "PRODUCT_LISTED"
)

// DefaultChannelName is the broadcast medium shared by every session
const DefaultChannelName = "bomul_auction_updates"

// Event carries the minimal payload a view needs to refresh.
// Product events carry a product snapshot, USER_UPDATE a user snapshot
// or nil (logout), REPORT_UPDATE nothing.
type Event struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	ProductID string          `json:"product_id,omitempty"`
	Product   *models.Product `json:"product,omitempty"`
	User      *models.User    `json:"user"`
	Origin    string          `json:"origin"`
	Timestamp time.Time       `json:"timestamp"`

	// FromRemote is set on events received from another session
	FromRemote bool `json:"-"`
}

// Listener receives events synchronously on the publishing goroutine
type Listener func(Event)

// ProductEvent builds a BID_UPDATE, AUCTION_CLOSED or PRODUCT_LISTED event
func ProductEvent(t Type, product models.Product) Event {
	snapshot := product.Clone()
	return Event{Type: t, ProductID: product.ID, Product: &snapshot}
}

// UserEvent builds a USER_UPDATE event; a nil user signals an ended session
func UserEvent(user *models.User) Event {
	if user == nil {
		return Event{Type: UserUpdate}
	}
	snapshot := *user
	return Event{Type: UserUpdate, User: &snapshot}
}

// ReportsChanged builds a payload-less REPORT_UPDATE event
func ReportsChanged() Event {
	return Event{Type: ReportUpdate}
}
