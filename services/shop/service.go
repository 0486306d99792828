package shop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trimly/models"
	"trimly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new shop account with a hashed password and an initial
// auth token.
func (s *DefaultShopService) Register(req RegisterRequest) (*models.Shop, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, _ := s.Repo.GetByEmail(email); existing != nil {
		return nil, NewAuthError("a shop with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("Register: failed to hash password: %w", err)
	}

	staff := req.StaffCount
	if staff < 1 {
		staff = 1
	}

	shop := &models.Shop{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       email,
		PhoneNumber: req.Phone,
		Address:     req.Address,
		StaffCount:  staff,
		Security: models.Security{
			PasswordHash: string(hash),
		},
	}

	token, err := utils.GenerateToken(shop.ID, shop.Email, utils.AuthTokenTTLHours*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("Register: failed to generate token: %w", err)
	}
	shop.Security.Token = token
	shop.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(shop); err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	return shop, nil
}

// Authenticate verifies credentials and rotates the auth token.
func (s *DefaultShopService) Authenticate(email, password string) (*models.Shop, error) {
	shop, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, NewAuthError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(shop.Security.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError("invalid email or password")
	}

	token, err := utils.GenerateToken(shop.ID, shop.Email, utils.AuthTokenTTLHours*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("Authenticate: failed to generate token: %w", err)
	}
	shop.Security.Token = token
	shop.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(shop.ID, bson.M{"security.tokenHash": shop.Security.TokenHash}); err != nil {
		return nil, fmt.Errorf("Authenticate: failed to persist token: %w", err)
	}
	utils.CacheShopAuthHash(context.Background(), shop.ID, shop.Security.TokenHash)
	return shop, nil
}

// GetShopByID retrieves a shop by ID.
func (s *DefaultShopService) GetShopByID(id string) (*models.Shop, error) {
	return s.Repo.GetByID(id)
}

// UpdateShop applies the provided profile updates.
func (s *DefaultShopService) UpdateShop(id string, updates UpdateShopRequest) (*models.Shop, error) {
	updateDoc := bson.M{}
	if updates.Name != "" {
		updateDoc["name"] = updates.Name
	}
	if updates.Phone != "" {
		updateDoc["phoneNumber"] = updates.Phone
	}
	if updates.Address != "" {
		updateDoc["address"] = updates.Address
	}
	if updates.StaffCount != nil && *updates.StaffCount >= 1 {
		updateDoc["staffCount"] = *updates.StaffCount
	}
	if updates.ThresholdOverrides != nil {
		updateDoc["thresholdOverrides"] = updates.ThresholdOverrides
	}
	if updates.FCMToken != "" {
		updateDoc["security.fcmToken"] = updates.FCMToken
	}
	if len(updateDoc) == 0 {
		return nil, NewAuthError("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, fmt.Errorf("UpdateShop: %w", err)
	}
	return s.Repo.GetByID(id)
}

// RevokeAuthToken invalidates the current token by clearing its hash.
func (s *DefaultShopService) RevokeAuthToken(id string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"security.tokenHash": ""}); err != nil {
		return fmt.Errorf("RevokeAuthToken: %w", err)
	}
	utils.InvalidateShopAuth(context.Background(), id)
	return nil
}
