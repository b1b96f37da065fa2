package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"timehuddle/config"
	"timehuddle/models"
	"timehuddle/services/availability"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeAvailabilityWarm = "availability:warm"

// InitWarmWorker runs the async cache warm worker in background.
func InitWarmWorker(availSvc availability.AvailabilityService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityWarm, handleWarmTask(availSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[WarmWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[WarmWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[WarmWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// EnqueueWarm schedules a cache warm for one schedule. The CRUD layer calls
// this after every schedule edit.
func EnqueueWarm(scheduleID string, days int) error {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmQueueDB,
	}
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	payload, err := json.Marshal(models.WarmPayload{ScheduleID: scheduleID, Days: days})
	if err != nil {
		return err
	}
	_, err = client.Enqueue(asynq.NewTask(TypeAvailabilityWarm, payload))
	return err
}

func handleWarmTask(availSvc availability.AvailabilityService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.WarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[WarmHandler] Invalid payload: %v", err)
			return err
		}

		days := p.Days
		if days <= 0 {
			days = config.AppConfig.WarmWindowDays
		}
		now := time.Now().UTC()
		rangeStart := now.Truncate(24 * time.Hour)
		rangeEnd := rangeStart.AddDate(0, 0, days)

		// RefreshAvailability recomputes and overwrites the cache entry even
		// when one is still live, so a warm enqueued right after a schedule
		// edit always lands the post-edit data.
		if _, err := availSvc.RefreshAvailability(ctx, p.ScheduleID, rangeStart, rangeEnd, 0, 0); err != nil {
			log.Printf("[WarmHandler] Failed to warm schedule %s: %v", p.ScheduleID, err)
			return err
		}

		log.Printf("[WarmHandler] Warmed schedule %s for %d days", p.ScheduleID, days)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[WarmWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
