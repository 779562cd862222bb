// Package seed provides the demo marketplace loaded into an empty ledger.
package seed

import (
	"time"

	"bomul-market/internal/models"
)

// DemoPassword is the login secret of every demo account
const DemoPassword = "1234"

const day = 24 * time.Hour

// Users returns the demo accounts
func Users() []models.User {
	return []models.User{
		{
			ID:                    "user1",
			Name:                  "김철수",
			PhoneNumber:           "010-1234-5678",
			Address:               "서울시 강남구 역삼동",
			Role:                  models.RoleSeller,
			IsSubscribed:          true,
			QuickCloseTickets:     1,
			TicketsPurchasedMonth: 2,
			AgreedToTerms:         true,
			AgreedToMarketing:     true,
			XP:                    450,
		},
		{
			ID:                "user2",
			Name:              "이영희",
			PhoneNumber:       "010-9876-5432",
			Address:           "경기도 성남시 분당구",
			Role:              models.RoleBuyer,
			QuickCloseTickets: 0,
			AgreedToTerms:     true,
			XP:                60,
		},
		{
			ID:                "admin",
			Name:              "관리자",
			PhoneNumber:       "000-0000-0000",
			Address:           "본사",
			Role:              models.RoleAdmin,
			QuickCloseTickets: 999,
			AgreedToTerms:     true,
			AgreedToMarketing: true,
			XP:                9999,
		},
	}
}

// Products returns the demo listings relative to now
func Products(now time.Time) []models.Product {
	return []models.Product{
		{
			ID:             "p1",
			SellerID:       "user1",
			SellerName:     "김철수",
			Title:          "빈티지 필름 카메라 (Leica M3)",
			Description:    "1980년대 빈티지 카메라입니다. 렌즈 상태 아주 좋습니다. 수집가들에게 추천합니다.",
			Category:       "Antiques",
			Image:          "https://picsum.photos/400/300?random=1",
			Type:           models.ProductTypeAuction,
			Status:         models.ProductStatusActive,
			StartPrice:     50000,
			CurrentPrice:   120000,
			OriginalPrice:  models.Price(2500000),
			CostPrice:      models.Price(80000),
			AppraisedValue: models.Price(1500000),
			CreatedAt:      now.Add(-2 * day),
			EndsAt:         now.Add(28 * day),
			Bids: []models.Bid{
				{ID: "b1", BidderID: "user2", BidderName: "이영희", Amount: 80000, Timestamp: now.Add(-80000 * time.Second)},
				{ID: "b2", BidderID: "admin", BidderName: "박수집", Amount: 100000, Timestamp: now.Add(-40000 * time.Second)},
				{ID: "b3", BidderID: "user2", BidderName: "이영희", Amount: 120000, Timestamp: now.Add(-10 * time.Second)},
			},
			DeliveryMethod: models.DeliveryParcel,
		},
		{
			ID:             "p2",
			SellerID:       "user1",
			SellerName:     "김철수",
			Title:          "이탈리아산 가죽 소파",
			Description:    "3년 사용한 가죽 소파입니다. 가죽 에이징이 멋스럽게 되었습니다.",
			Category:       "Furniture",
			Image:          "https://picsum.photos/400/300?random=2",
			Type:           models.ProductTypeAuction,
			Status:         models.ProductStatusActive,
			StartPrice:     100000,
			CurrentPrice:   150000,
			OriginalPrice:  models.Price(3000000),
			CostPrice:      models.Price(50000),
			AppraisedValue: models.Price(400000),
			CreatedAt:      now.Add(-5 * day),
			EndsAt:         now.Add(25 * day),
			Bids: []models.Bid{
				{ID: "b1", BidderID: "user2", BidderName: "이영희", Amount: 150000, Timestamp: now.Add(-10 * time.Second)},
			},
			DeliveryMethod: models.DeliveryPickup,
		},
		{
			ID:             "p3",
			SellerID:       "admin",
			SellerName:     "보물고물 공식",
			Title:          "안전 인증 중고 맥북 프로",
			Description:    "전문가가 검수한 리퍼비시 노트북입니다. 6개월 보증 포함.",
			Category:       "Electronics",
			Image:          "https://picsum.photos/400/300?random=3",
			Type:           models.ProductTypeShop,
			Status:         models.ProductStatusActive,
			StartPrice:     850000,
			CurrentPrice:   850000,
			OriginalPrice:  models.Price(2900000),
			CostPrice:      models.Price(600000),
			AppraisedValue: models.Price(950000),
			CreatedAt:      now,
			EndsAt:         now.Add(30 * day),
			Bids:           []models.Bid{},
			DeliveryMethod: models.DeliveryParcel,
		},
	}
}
