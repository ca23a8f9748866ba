package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"florist-backend/internal/config"
	"florist-backend/internal/shared"
	"florist-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisCfg config.RedisConfig, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisCfg.Host, Password: redisCfg.Password, DB: redisCfg.DB},
		&asynq.SchedulerOpts{
			Location: time.Local,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

// RegisterJobs wires up every cron entry
func (s *Scheduler) RegisterJobs() error {
	if err := s.registerRetryFailedDeliveriesJob(); err != nil {
		return err
	}
	if err := s.registerRefreshHolidayCacheJob(); err != nil {
		return err
	}
	if err := s.registerClearStaleCartsJob(); err != nil {
		return err
	}
	if err := s.registerDeactivatePromotionsJob(); err != nil {
		return err
	}
	return nil
}

// ================================================
// JOB 1: Retry Failed Notification Deliveries (Every 15 minutes)
// ================================================
// A channel that was down at order time gets its messages re-sent once it
// recovers, up to the per-attempt cap stored with each delivery log.
func (s *Scheduler) registerRetryFailedDeliveriesJob() error {
	payload, err := json.Marshal(shared.RetryFailedPayload{Limit: s.jobConfig.RetryFailedLimit})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeRetryFailedDeliveries, payload)

	_, err = s.scheduler.Register(
		"*/15 * * * *",
		task,
		asynq.Queue(shared.QueueNotification),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register RetryFailedDeliveries job", err)
		return err
	}

	logger.Info("Registered RetryFailedDeliveries: every 15 minutes", map[string]interface{}{
		"limit": s.jobConfig.RetryFailedLimit,
	})
	return nil
}

// ================================================
// JOB 2: Refresh Holiday Cache (Daily at 4 AM)
// ================================================
// Keeps the holiday cache warm so availability checks never wait on the
// remote holiday service during the day.
func (s *Scheduler) registerRefreshHolidayCacheJob() error {
	task := asynq.NewTask(shared.TypeRefreshHolidayCache, nil)

	_, err := s.scheduler.Register(
		"0 4 * * *",
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register RefreshHolidayCache job", err)
		return err
	}

	logger.Info("Registered RefreshHolidayCache: daily at 4 AM", map[string]interface{}{})
	return nil
}

// ================================================
// JOB 3: Clear Stale Carts (Daily at 3 AM)
// ================================================
func (s *Scheduler) registerClearStaleCartsJob() error {
	task := asynq.NewTask(shared.TypeClearStaleCarts, nil)

	_, err := s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(1),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register ClearStaleCarts job", err)
		return err
	}

	logger.Info("Registered ClearStaleCarts: daily at 3 AM", map[string]interface{}{})
	return nil
}

// ================================================
// JOB 4: Deactivate Expired Promotions (Daily at 1 AM)
// ================================================
func (s *Scheduler) registerDeactivatePromotionsJob() error {
	task := asynq.NewTask(shared.TypeDeactivatePromotions, nil)

	_, err := s.scheduler.Register(
		"0 1 * * *",
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(1),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register DeactivatePromotions job", err)
		return err
	}

	logger.Info("Registered DeactivatePromotions: daily at 1 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
