package helpers

import (
	"time"

	model "bomul-market/internal/models"
	"bomul-market/internal/progression"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type QuickCloseRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type BuyNowRequest struct {
	BuyerID string `json:"buyer_id" binding:"required"`
}

type CreateProductRequest struct {
	SellerID       string               `json:"seller_id" binding:"required"`
	Title          string               `json:"title" binding:"required"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	Image          string               `json:"image"`
	Type           model.ProductType    `json:"type" binding:"required,oneof=AUCTION SHOP"`
	StartPrice     int64                `json:"start_price" binding:"required,gt=0"`
	OriginalPrice  *int64               `json:"original_price"`
	CostPrice      *int64               `json:"cost_price"`
	AppraisedValue *int64               `json:"appraised_value"`
	EndsAt         *time.Time           `json:"ends_at"`
	DeliveryMethod model.DeliveryMethod `json:"delivery_method" binding:"omitempty,oneof=PARCEL PICKUP"`
}

// ToProduct maps the request onto a listing; the ledger fills in the rest
func (r CreateProductRequest) ToProduct() model.Product {
	p := model.Product{
		SellerID:       r.SellerID,
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		Image:          r.Image,
		Type:           r.Type,
		StartPrice:     r.StartPrice,
		OriginalPrice:  r.OriginalPrice,
		CostPrice:      r.CostPrice,
		AppraisedValue: r.AppraisedValue,
		DeliveryMethod: r.DeliveryMethod,
	}
	if r.EndsAt != nil {
		p.EndsAt = *r.EndsAt
	}
	return p
}

// ProductResponse adds the derived price cap to a product snapshot
type ProductResponse struct {
	model.Product
	PriceCap int64 `json:"price_cap"`
}

func NewProductResponse(p model.Product) ProductResponse {
	if p.Bids == nil {
		p.Bids = []model.Bid{}
	}
	return ProductResponse{Product: p, PriceCap: p.PriceCap()}
}

// OutcomeResponse is returned by the auction and shop operations
type OutcomeResponse struct {
	Product *ProductResponse `json:"product,omitempty"`
	User    *model.User      `json:"user,omitempty"`
}

func NewOutcomeResponse(res model.Result) OutcomeResponse {
	var out OutcomeResponse
	if res.Product != nil {
		p := NewProductResponse(*res.Product)
		out.Product = &p
	}
	if res.User != nil {
		u := *res.User
		out.User = &u
	}
	return out
}

type RegisterUserRequest struct {
	ID                string         `json:"id" binding:"required"`
	Name              string         `json:"name" binding:"required"`
	Password          string         `json:"password" binding:"required"`
	PhoneNumber       string         `json:"phone_number"`
	Address           string         `json:"address"`
	Role              model.UserRole `json:"role" binding:"omitempty,oneof=ADMIN SELLER BUYER"`
	AgreedToTerms     bool           `json:"agreed_to_terms"`
	AgreedToMarketing bool           `json:"agreed_to_marketing"`
}

func (r RegisterUserRequest) ToUser() model.User {
	return model.User{
		ID:                r.ID,
		Name:              r.Name,
		PhoneNumber:       r.PhoneNumber,
		Address:           r.Address,
		Role:              r.Role,
		AgreedToTerms:     r.AgreedToTerms,
		AgreedToMarketing: r.AgreedToMarketing,
	}
}

// UserResponse pairs a user with its derived level
type UserResponse struct {
	User  model.User            `json:"user"`
	Level progression.LevelInfo `json:"level"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{User: u, Level: progression.GetLevelInfo(u.XP)}
}

type LoginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateReportRequest struct {
	TargetID   string                 `json:"target_id" binding:"required"`
	TargetType model.ReportTargetType `json:"target_type" binding:"required,oneof=PRODUCT USER"`
	ReporterID string                 `json:"reporter_id" binding:"required"`
	Reason     string                 `json:"reason" binding:"required"`
}

type UpdateReportRequest struct {
	Status model.ReportStatus `json:"status" binding:"required,oneof=PENDING RESOLVED DISMISSED"`
}
