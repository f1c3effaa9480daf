package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sweepstack/config"
	"sweepstack/models"
	"sweepstack/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeVisitReminder = "booking:visit_reminder"

// VisitReminderPayload is what the worker needs to hand a reminder to the
// notification collaborator.
type VisitReminderPayload struct {
	BookingID  string `json:"bookingId"`
	CustomerID string `json:"customerId"`
	CleanerID  string `json:"cleanerId,omitempty"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
}

// Notifier delivers a reminder. Delivery (push, email) belongs to an
// external collaborator; the default implementation just logs.
type Notifier interface {
	NotifyVisitReminder(ctx context.Context, p VisitReminderPayload) error
}

// LogNotifier is the in-repo stand-in for the delivery collaborator.
type LogNotifier struct{}

func (LogNotifier) NotifyVisitReminder(_ context.Context, p VisitReminderPayload) error {
	utils.GetLogger().Info("visit reminder due",
		zap.String("booking", p.BookingID),
		zap.String("customer", p.CustomerID),
		zap.String("date", p.Date),
		zap.String("time", p.StartTime))
	return nil
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues visit reminders ahead of confirmed bookings.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

func NewReminderScheduler() *ReminderScheduler {
	lead := time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour
	if lead <= 0 {
		lead = 24 * time.Hour
	}
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpts()),
		lead:   lead,
	}
}

// ScheduleVisitReminder queues a reminder to fire ahead of the visit. A
// booking scheduled closer than the lead time gets the reminder right away.
func (s *ReminderScheduler) ScheduleVisitReminder(ctx context.Context, b *models.Booking) error {
	slot, err := b.ScheduledAt(time.Local)
	if err != nil {
		return fmt.Errorf("unparseable booking slot: %w", err)
	}

	payload, err := json.Marshal(VisitReminderPayload{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		CleanerID:  b.CleanerID,
		Date:       b.Date,
		StartTime:  b.StartTime,
	})
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	fireAt := slot.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now().Add(time.Minute)
	}

	task := asynq.NewTask(TypeVisitReminder, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("enqueue visit reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifier Notifier) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeVisitReminder, handleVisitReminder(notifier))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleVisitReminder(notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p VisitReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}
		return notifier.NotifyVisitReminder(ctx, p)
	}
}
