package models

import "time"

// UserRole is advisory only; any user may list or bid
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleSeller UserRole = "SELLER"
	RoleBuyer  UserRole = "BUYER"
)

type ProductType string

const (
	ProductTypeAuction ProductType = "AUCTION"
	ProductTypeShop    ProductType = "SHOP"
)

// ProductStatus has two terminal states; nothing leaves SOLD or EXPIRED
type ProductStatus string

const (
	ProductStatusActive  ProductStatus = "ACTIVE"
	ProductStatusSold    ProductStatus = "SOLD"
	ProductStatusExpired ProductStatus = "EXPIRED"
)

type DeliveryMethod string

const (
	DeliveryParcel DeliveryMethod = "PARCEL"
	DeliveryPickup DeliveryMethod = "PICKUP"
)

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "PENDING"
	ReportStatusResolved  ReportStatus = "RESOLVED"
	ReportStatusDismissed ReportStatus = "DISMISSED"
)

type ReportTargetType string

const (
	ReportTargetProduct ReportTargetType = "PRODUCT"
	ReportTargetUser    ReportTargetType = "USER"
)

// PriceCapMultiplier applied to the cost basis gives the auto-win ceiling
const PriceCapMultiplier = 10

// User represents a marketplace participant
type User struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	PhoneNumber           string   `json:"phone_number"`
	Address               string   `json:"address"`
	Role                  UserRole `json:"role"`
	IsSubscribed          bool     `json:"is_subscribed"`
	QuickCloseTickets     int      `json:"quick_close_tickets"`
	TicketsPurchasedMonth int      `json:"tickets_purchased_month"`
	AgreedToTerms         bool     `json:"agreed_to_terms"`
	AgreedToMarketing     bool     `json:"agreed_to_marketing"`
	XP                    int      `json:"xp"`
}

// Bid is immutable once appended to a product.
// BidderName is a snapshot taken at write time and may go stale.
type Bid struct {
	ID         string    `json:"id"`
	BidderID   string    `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
	Amount     int64     `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
}

// Product is either a timed auction or a fixed-price shop listing.
// Prices are whole KRW.
type Product struct {
	ID             string         `json:"id"`
	SellerID       string         `json:"seller_id"`
	SellerName     string         `json:"seller_name"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Image          string         `json:"image"`
	Type           ProductType    `json:"type"`
	Status         ProductStatus  `json:"status"`
	StartPrice     int64          `json:"start_price"`
	CurrentPrice   int64          `json:"current_price"`
	OriginalPrice  *int64         `json:"original_price,omitempty"`
	CostPrice      *int64         `json:"cost_price,omitempty"`
	AppraisedValue *int64         `json:"appraised_value,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	EndsAt         time.Time      `json:"ends_at"`
	Bids           []Bid          `json:"bids"`
	WinnerID       string         `json:"winner_id,omitempty"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	// Version increases by one on every mutation of this product
	Version uint64 `json:"version"`
}

// BasePrice is the cost basis the price cap derives from
func (p Product) BasePrice() int64 {
	if p.CostPrice != nil {
		return *p.CostPrice
	}
	return p.StartPrice
}

// PriceCap returns the ceiling at which an auction is won immediately
func (p Product) PriceCap() int64 {
	return p.BasePrice() * PriceCapMultiplier
}

// LatestBid returns the most recently appended bid
func (p Product) LatestBid() (Bid, bool) {
	if len(p.Bids) == 0 {
		return Bid{}, false
	}
	return p.Bids[len(p.Bids)-1], true
}

// Clone returns a deep copy safe to hand out of the store
func (p Product) Clone() Product {
	c := p
	c.Bids = append([]Bid(nil), p.Bids...)
	if c.Bids == nil {
		c.Bids = []Bid{}
	}
	c.OriginalPrice = cloneInt64(p.OriginalPrice)
	c.CostPrice = cloneInt64(p.CostPrice)
	c.AppraisedValue = cloneInt64(p.AppraisedValue)
	return c
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

// Price is a helper for the optional price fields
func Price(v int64) *int64 {
	return &v
}

// Report flags a product or user for administrative review
type Report struct {
	ID         string           `json:"id"`
	TargetID   string           `json:"target_id"`
	TargetType ReportTargetType `json:"target_type"`
	ReporterID string           `json:"reporter_id"`
	Reason     string           `json:"reason"`
	Status     ReportStatus     `json:"status"`
	Timestamp  time.Time        `json:"timestamp"`
}

// Result is the outcome shape shared by every marketplace operation.
// Err carries the sentinel from marketerrors when Success is false.
type Result struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Product *Product `json:"product,omitempty"`
	User    *User    `json:"user,omitempty"`
	Err     error    `json:"-"`
}
