package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"bomul-market/internal/marketerrors"
	model "bomul-market/internal/models"
	"bomul-market/services/market/helpers"
	"bomul-market/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_market.go -package=handler bomul-market/services/market/handler AuctionServiceInterface,MarketplaceInterface

type AuctionServiceInterface interface {
	PlaceBid(ctx context.Context, productID string, amount int64, bidder model.User) model.Result
	QuickCloseAuction(ctx context.Context, productID, userID string) model.Result
	BuyNow(ctx context.Context, productID, buyerID string) model.Result
}

type MarketplaceInterface interface {
	GetProducts() []model.Product
	GetProductByID(id string) (model.Product, bool)
	AddProduct(ctx context.Context, product model.Product) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	GetUserByID(id string) (model.User, bool)
	RegisterUser(ctx context.Context, user model.User, secret string) (model.User, error)
	SubscribeUser(ctx context.Context, userID string) (model.User, error)
	PurchaseTicket(ctx context.Context, userID string) model.Result
	CurrentUser() *model.User
	Login(ctx context.Context, id, password string) (model.User, error)
	ClearSession(ctx context.Context)

	GetReports() []model.Report
	OrphanedReports() []model.Report
	AddReport(ctx context.Context, report model.Report) (model.Report, error)
	UpdateReportStatus(ctx context.Context, id string, status model.ReportStatus) (model.Report, error)
}

type MarketHandler struct {
	auctions AuctionServiceInterface
	market   MarketplaceInterface
}

func NewMarketHandler(auctions AuctionServiceInterface, market MarketplaceInterface) *MarketHandler {
	return &MarketHandler{auctions: auctions, market: market}
}

// ListProductsHandler handles GET /products, newest first
func (h *MarketHandler) ListProductsHandler(c *gin.Context) {
	typeFilter := model.ProductType(c.Query("type"))
	statusFilter := model.ProductStatus(c.Query("status"))
	sellerFilter := c.Query("seller")

	products := h.market.GetProducts()
	resp := make([]helpers.ProductResponse, 0, len(products))
	for _, p := range products {
		if typeFilter != "" && p.Type != typeFilter {
			continue
		}
		if statusFilter != "" && p.Status != statusFilter {
			continue
		}
		if sellerFilter != "" && p.SellerID != sellerFilter {
			continue
		}
		resp = append(resp, helpers.NewProductResponse(p))
	}
	sort.SliceStable(resp, func(i, j int) bool {
		return resp[i].CreatedAt.After(resp[j].CreatedAt)
	})

	utils.JSONResponse(c, http.StatusOK, resp, "products retrieved successfully")
	helpers.LogSuccess("ListProductsHandler", "products retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetProductHandler handles GET /products/:id
func (h *MarketHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("id")
	product, ok := h.market.GetProductByID(productID)
	if !ok {
		helpers.RespondError(c, "GetProductHandler", fmt.Errorf("product %s: %w", productID, marketerrors.ErrProductNotFound), "", nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponse(product), "product retrieved successfully")
}

// CreateProductHandler handles POST /products
func (h *MarketHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	product, err := h.market.AddProduct(c.Request.Context(), req.ToProduct())
	if err != nil {
		helpers.RespondError(c, "CreateProductHandler", err, "", map[string]any{"seller_id": req.SellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewProductResponse(product), "product listed successfully")
	helpers.LogSuccess("CreateProductHandler", "product listed successfully", map[string]any{
		"product_id": product.ID,
		"seller_id":  product.SellerID,
		"type":       product.Type,
	})
}

// DeleteProductHandler handles DELETE /products/:id
func (h *MarketHandler) DeleteProductHandler(c *gin.Context) {
	productID := c.Param("id")
	if err := h.market.DeleteProduct(c.Request.Context(), productID); err != nil {
		helpers.RespondError(c, "DeleteProductHandler", err, "", map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"id": productID}, "product deleted successfully")
	helpers.LogSuccess("DeleteProductHandler", "product deleted successfully", map[string]any{"product_id": productID})
}

// PlaceBidHandler handles POST /products/:id/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	productID := c.Param("id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bidder, ok := h.market.GetUserByID(req.UserID)
	if !ok {
		helpers.RespondError(c, "PlaceBidHandler", fmt.Errorf("bidder %s: %w", req.UserID, marketerrors.ErrUserNotFound), "", nil)
		return
	}

	res := h.auctions.PlaceBid(c.Request.Context(), productID, req.Amount, bidder)
	h.respondOutcome(c, "PlaceBidHandler", res, http.StatusCreated, map[string]any{
		"product_id": productID,
		"user_id":    req.UserID,
		"amount":     req.Amount,
	})
}

// QuickCloseHandler handles POST /products/:id/quick-close
func (h *MarketHandler) QuickCloseHandler(c *gin.Context) {
	productID := c.Param("id")
	var req helpers.QuickCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "QuickCloseHandler", err)
		return
	}

	res := h.auctions.QuickCloseAuction(c.Request.Context(), productID, req.UserID)
	h.respondOutcome(c, "QuickCloseHandler", res, http.StatusOK, map[string]any{
		"product_id": productID,
		"user_id":    req.UserID,
	})
}

// BuyNowHandler handles POST /products/:id/buy
func (h *MarketHandler) BuyNowHandler(c *gin.Context) {
	productID := c.Param("id")
	var req helpers.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyNowHandler", err)
		return
	}

	res := h.auctions.BuyNow(c.Request.Context(), productID, req.BuyerID)
	h.respondOutcome(c, "BuyNowHandler", res, http.StatusOK, map[string]any{
		"product_id": productID,
		"buyer_id":   req.BuyerID,
	})
}

func (h *MarketHandler) respondOutcome(c *gin.Context, handlerName string, res model.Result, okStatus int, ctx map[string]any) {
	if !res.Success {
		err := res.Err
		if err == nil {
			err = errors.New(res.Message)
		}
		helpers.RespondError(c, handlerName, err, res.Message, ctx)
		return
	}
	utils.JSONResponse(c, okStatus, helpers.NewOutcomeResponse(res), res.Message)
	helpers.LogSuccess(handlerName, res.Message, ctx)
}
