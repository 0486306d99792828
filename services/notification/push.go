package notification

import (
	"context"
	"fmt"

	"trimly/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// SendShopPushNotification looks up the shop's FCM token and sends a push.
// A missing messaging client (no Firebase credentials) is a no-op.
func (s *DefaultNotificationService) SendShopPushNotification(
	ctx context.Context,
	shopID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("push skipped, FCM client not configured", zap.String("shopID", shopID))
		return nil
	}

	sh, err := s.shops.GetShopByID(shopID)
	if err != nil {
		return fmt.Errorf("SendShopPushNotification: could not find shop %s: %w", shopID, err)
	}
	token := sh.Security.FCMToken
	if token == "" {
		return fmt.Errorf("SendShopPushNotification: shop %s has no FCM token", shopID)
	}

	if data == nil {
		data = map[string]string{}
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendShopPushNotification: failed to send FCM message: %w", err)
	}

	utils.GetLogger().Debug("push sent", zap.String("shopID", shopID), zap.String("messageID", response))
	return nil
}
