package shop

import (
	shopRepo "trimly/database/repository/shop"
	"trimly/models"
)

// ShopService manages tenant accounts and authentication.
type ShopService interface {
	Register(req RegisterRequest) (*models.Shop, error)
	Authenticate(email, password string) (*models.Shop, error)
	GetShopByID(id string) (*models.Shop, error)
	UpdateShop(id string, updates UpdateShopRequest) (*models.Shop, error)
	RevokeAuthToken(id string) error
}

// RegisterRequest carries the fields accepted at shop registration.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Phone      string `json:"phoneNumber"`
	Address    string `json:"address"`
	StaffCount int    `json:"staffCount"`
}

// UpdateShopRequest carries the mutable profile fields.
type UpdateShopRequest struct {
	Name               string             `json:"name"`
	Phone              string             `json:"phoneNumber"`
	Address            string             `json:"address"`
	StaffCount         *int               `json:"staffCount"`
	ThresholdOverrides map[string]float64 `json:"thresholdOverrides"`
	FCMToken           string             `json:"fcmToken"`
}

// DefaultShopService implements ShopService.
type DefaultShopService struct {
	Repo shopRepo.ShopRepository
}
