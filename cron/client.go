package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"trimly/config"
	"trimly/models"

	"github.com/hibiken/asynq"
)

var taskClient *asynq.Client

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitTaskClient creates the shared asynq client used for enqueueing.
func InitTaskClient() {
	taskClient = asynq.NewClient(redisOpts())
}

// ReminderClient schedules reminder tasks. It satisfies the booking
// service's ReminderScheduler interface.
type ReminderClient struct{}

// NewReminderClient returns a scheduler backed by the shared asynq client.
func NewReminderClient() *ReminderClient {
	if taskClient == nil {
		InitTaskClient()
	}
	return &ReminderClient{}
}

// ScheduleBookingReminder enqueues a reminder to fire at processAt.
func (c *ReminderClient) ScheduleBookingReminder(payload models.ReminderPayload, processAt time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ScheduleBookingReminder: failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, data)
	if _, err := taskClient.Enqueue(task, asynq.ProcessAt(processAt)); err != nil {
		return fmt.Errorf("ScheduleBookingReminder: failed to enqueue task: %w", err)
	}
	return nil
}
