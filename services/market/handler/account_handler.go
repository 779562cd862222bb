package handler

import (
	"fmt"
	"net/http"

	"bomul-market/internal/marketerrors"
	"bomul-market/services/market/helpers"
	"bomul-market/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler handles POST /users
func (h *MarketHandler) RegisterUserHandler(c *gin.Context) {
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	user, err := h.market.RegisterUser(c.Request.Context(), req.ToUser(), req.Password)
	if err != nil {
		helpers.RespondError(c, "RegisterUserHandler", err, "", map[string]any{"user_id": req.ID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewUserResponse(user), "user registered successfully")
	helpers.LogSuccess("RegisterUserHandler", "user registered successfully", map[string]any{"user_id": user.ID})
}

// GetUserHandler handles GET /users/:id
func (h *MarketHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("id")
	user, ok := h.market.GetUserByID(userID)
	if !ok {
		helpers.RespondError(c, "GetUserHandler", fmt.Errorf("user %s: %w", userID, marketerrors.ErrUserNotFound), "", nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "user retrieved successfully")
}

// SubscribeHandler handles POST /users/:id/subscription
func (h *MarketHandler) SubscribeHandler(c *gin.Context) {
	userID := c.Param("id")
	user, err := h.market.SubscribeUser(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "SubscribeHandler", err, "", map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "subscription activated")
	helpers.LogSuccess("SubscribeHandler", "subscription activated", map[string]any{
		"user_id": userID,
		"tickets": user.QuickCloseTickets,
	})
}

// PurchaseTicketHandler handles POST /users/:id/tickets
func (h *MarketHandler) PurchaseTicketHandler(c *gin.Context) {
	userID := c.Param("id")
	res := h.market.PurchaseTicket(c.Request.Context(), userID)
	if !res.Success {
		helpers.RespondError(c, "PurchaseTicketHandler", res.Err, res.Message, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(*res.User), res.Message)
	helpers.LogSuccess("PurchaseTicketHandler", "ticket purchased", map[string]any{"user_id": userID})
}

// LoginHandler handles POST /session
func (h *MarketHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.market.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, "", map[string]any{"user_id": req.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "signed in")
	helpers.LogSuccess("LoginHandler", "signed in", map[string]any{"user_id": user.ID})
}

// CurrentSessionHandler handles GET /session
func (h *MarketHandler) CurrentSessionHandler(c *gin.Context) {
	user := h.market.CurrentUser()
	if user == nil {
		utils.JSONResponse(c, http.StatusOK, nil, "no active session")
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(*user), "active session")
}

// LogoutHandler handles DELETE /session
func (h *MarketHandler) LogoutHandler(c *gin.Context) {
	h.market.ClearSession(c.Request.Context())
	utils.JSONResponse(c, http.StatusOK, nil, "signed out")
}
