package jobs

import (
	"context"
	"log"
	"time"

	"github.com/directpavers/paverquote/pkg/analytics"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron          *cron.Cron
	analytics     *analytics.Service
	audit         *audit.Service
	retentionDays int
	logger        *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(analyticsSvc *analytics.Service, auditSvc *audit.Service, retentionDays int, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}
	if retentionDays <= 0 {
		retentionDays = 180
	}

	return &CronManager{
		cron:          cron.New(),
		analytics:     analyticsSvc,
		audit:         auditSvc,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 2 AM: warm the overview cache so the first admin visit of the
	// day is fast
	_, err := cm.cron.AddFunc("0 2 * * *", func() {
		cm.logger.Println("🕐 Running daily overview warm-up job...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		for _, days := range []int{7, 30} {
			if _, err := cm.analytics.Overview(ctx, days); err != nil {
				cm.logger.Printf("❌ Failed to warm %d-day overview: %v", days, err)
			}
		}

		cm.logger.Println("✅ Daily overview warm-up completed")
	})
	if err != nil {
		return err
	}

	// Weekly on Sunday at 3 AM: drop events and logs past retention
	_, err = cm.cron.AddFunc("0 3 * * 0", func() {
		cm.logger.Println("🕐 Running weekly retention purge job...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		cutoff := time.Now().AddDate(0, 0, -cm.retentionDays)

		events, err := cm.analytics.PurgeOlderThan(ctx, cutoff)
		if err != nil {
			cm.logger.Printf("❌ Failed to purge analytics events: %v", err)
		} else {
			cm.logger.Printf("🗑️  Purged %d analytics events older than %d days", events, cm.retentionDays)
		}

		logs, err := cm.audit.Purge(ctx, cutoff)
		if err != nil {
			cm.logger.Printf("❌ Failed to purge activity logs: %v", err)
		} else {
			cm.logger.Printf("🗑️  Purged %d activity log entries older than %d days", logs, cm.retentionDays)
		}

		cm.logger.Println("✅ Weekly retention purge completed")
	})
	if err != nil {
		return err
	}

	return nil
}

// Start begins running the scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("✅ Cron jobs started")
}

// Stop gracefully stops the cron scheduler
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("✅ Cron jobs stopped")
}
