package notification

import (
	"context"
	"fmt"

	"trimly/services/shop"
)

// NotificationService defines methods for sending FCM pushes to shop owners.
type NotificationService interface {
	SendShopPushNotification(ctx context.Context, shopID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	shops shop.ShopService
}

func NewDefaultNotificationService(shopSvc shop.ShopService) (*DefaultNotificationService, error) {
	if shopSvc == nil {
		return nil, fmt.Errorf("notification service initialization error: shop service is nil")
	}
	return &DefaultNotificationService{shops: shopSvc}, nil
}
