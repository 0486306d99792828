package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"trimly/config"
	shopRepo "trimly/database/repository/shop"
	"trimly/models"
	"trimly/services/insights"
	"trimly/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeReminderSend   = "reminder:send"
	TypeInsightsDigest = "insights:digest"

	// digestCronSpec fires the daily digest at 07:00 server time.
	digestCronSpec = "0 7 * * *"
)

// InitWorker runs the async worker and periodic scheduler in background.
func InitWorker(notifSvc notification.NotificationService, insightsSvc insights.InsightsService, shops shopRepo.ShopRepository) {
	opts := redisOpts()

	srv := asynq.NewServer(
		opts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))
	mux.HandleFunc(TypeInsightsDigest, handleDigestTask(notifSvc, insightsSvc, shops))

	// Start Redis health monitor
	go monitorRedisConnection()

	go runScheduler(opts)

	// Start async worker with retry logic
	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// runScheduler registers the periodic daily-digest task.
func runScheduler(opts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(opts, nil)
	task := asynq.NewTask(TypeInsightsDigest, nil)
	if _, err := scheduler.Register(digestCronSpec, task); err != nil {
		log.Printf("[Worker] failed to register digest schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[Worker] scheduler stopped: %v", err)
	}
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"bookingId": p.BookingID,
			"fireDate":  p.FireDate,
		}

		if err := notifSvc.SendShopPushNotification(ctx, p.ShopID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
			return err
		}
		return nil
	}
}

// handleDigestTask recomputes the insights dashboard for every shop and
// pushes a one-line summary of the top alert.
func handleDigestTask(notifSvc notification.NotificationService, insightsSvc insights.InsightsService, shops shopRepo.ShopRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		all, err := shops.ListAll()
		if err != nil {
			return fmt.Errorf("digest: failed to list shops: %w", err)
		}

		for _, sh := range all {
			report, err := insightsSvc.Dashboard(ctx, sh.ID)
			if err != nil {
				log.Printf("[DigestHandler] failed to build report for shop %s: %v", sh.ID, err)
				continue
			}
			if len(report.Alerts) == 0 {
				continue
			}

			top := report.Alerts[0]
			body := fmt.Sprintf("%s (+%d more)", top.Title, len(report.Alerts)-1)
			if len(report.Alerts) == 1 {
				body = top.Title
			}
			if err := notifSvc.SendShopPushNotification(ctx, sh.ID, "Your daily shop digest", body, map[string]string{
				"category": top.Category,
			}); err != nil {
				log.Printf("[DigestHandler] failed to push digest for shop %s: %v", sh.ID, err)
			}
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[Worker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
