package handlers

import (
	"net/http"

	"trimly/services/shop"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShopHandler exposes shop account endpoints.
type ShopHandler struct {
	Service shop.ShopService
}

func NewShopHandler(svc shop.ShopService) *ShopHandler {
	return &ShopHandler{Service: svc}
}

// RegisterShopHandler creates a new shop account.
func (h *ShopHandler) RegisterShopHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req shop.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid shop registration request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Service.Register(req)
	if err != nil {
		logger.Error("Failed to register shop", zap.Error(err))
		utils.JSONError(c, http.StatusConflict, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AuthenticateShopHandler logs a shop owner in and returns a fresh token.
func (h *ShopHandler) AuthenticateShopHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	authed, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		logger.Warn("Failed shop login", zap.String("email", req.Email))
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", "invalid email or password")
		return
	}
	c.JSON(http.StatusOK, authed)
}

// GetShopHandler returns the authenticated shop's profile.
func (h *ShopHandler) GetShopHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	sh, err := h.Service.GetShopByID(shopID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Shop not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, sh)
}

// UpdateShopHandler applies profile updates to the authenticated shop.
func (h *ShopHandler) UpdateShopHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req shop.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateShop(shopID, req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RevokeShopTokenHandler invalidates the current auth token.
func (h *ShopHandler) RevokeShopTokenHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	if err := h.Service.RevokeAuthToken(shopID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Revocation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token revoked"})
}
