package payment

import (
	"fmt"

	shopRepo "trimly/database/repository/shop"
	"trimly/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/setupintent"
	"go.mongodb.org/mongo-driver/bson"
)

// AutopaySetup is returned when autopay is enabled: the client completes the
// Stripe SetupIntent with the client secret.
type AutopaySetup struct {
	Settings     models.AutopaySettings `json:"settings"`
	ClientSecret string                 `json:"clientSecret,omitempty"`
}

// PaymentService manages a shop's autopay configuration.
type PaymentService interface {
	GetAutopaySettings(shopID string) (*models.AutopaySettings, error)
	EnableAutopay(shopID string) (*AutopaySetup, error)
	DisableAutopay(shopID string) (*models.AutopaySettings, error)
	SetDefaultPaymentMethod(shopID, paymentMethodID string) (*models.AutopaySettings, error)
}

// DefaultPaymentService implements PaymentService on top of Stripe.
type DefaultPaymentService struct {
	Shops shopRepo.ShopRepository
}

func (s *DefaultPaymentService) GetAutopaySettings(shopID string) (*models.AutopaySettings, error) {
	shop, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("GetAutopaySettings: %w", err)
	}
	return &shop.Autopay, nil
}

// EnableAutopay ensures the shop has a Stripe customer, creates a SetupIntent
// for saving a payment method, and marks autopay enabled.
func (s *DefaultPaymentService) EnableAutopay(shopID string) (*AutopaySetup, error) {
	shop, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("EnableAutopay: %w", err)
	}

	customerID := shop.Autopay.StripeCustomerID
	if customerID == "" {
		params := &stripe.CustomerParams{
			Email: stripe.String(shop.Email),
			Name:  stripe.String(shop.Name),
		}
		params.AddMetadata("shopId", shop.ID)
		cust, err := customer.New(params)
		if err != nil {
			return nil, fmt.Errorf("EnableAutopay: failed to create stripe customer: %w", err)
		}
		customerID = cust.ID
	}

	intent, err := setupintent.New(&stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("EnableAutopay: failed to create setup intent: %w", err)
	}

	if err := s.Shops.UpdateSetDocument(shopID, bson.M{
		"autopay.enabled":          true,
		"autopay.stripeCustomerId": customerID,
	}); err != nil {
		return nil, fmt.Errorf("EnableAutopay: failed to persist settings: %w", err)
	}

	updated, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("EnableAutopay: %w", err)
	}
	return &AutopaySetup{
		Settings:     updated.Autopay,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (s *DefaultPaymentService) DisableAutopay(shopID string) (*models.AutopaySettings, error) {
	if err := s.Shops.UpdateSetDocument(shopID, bson.M{"autopay.enabled": false}); err != nil {
		return nil, fmt.Errorf("DisableAutopay: %w", err)
	}
	shop, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("DisableAutopay: %w", err)
	}
	return &shop.Autopay, nil
}

// SetDefaultPaymentMethod records the payment method chosen after the
// SetupIntent completes client-side.
func (s *DefaultPaymentService) SetDefaultPaymentMethod(shopID, paymentMethodID string) (*models.AutopaySettings, error) {
	if paymentMethodID == "" {
		return nil, fmt.Errorf("SetDefaultPaymentMethod: payment method id is required")
	}
	if err := s.Shops.UpdateSetDocument(shopID, bson.M{
		"autopay.defaultPaymentMethod": paymentMethodID,
	}); err != nil {
		return nil, fmt.Errorf("SetDefaultPaymentMethod: %w", err)
	}
	shop, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("SetDefaultPaymentMethod: %w", err)
	}
	return &shop.Autopay, nil
}
