package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reachout/repository"
	analyticsService "reachout/services/analytics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const reportTimeout = 2 * time.Minute

// ReportJob emails the dashboard stats to every administrator.
type ReportJob struct {
	Analytics *analyticsService.Service
	Admins    repository.AdminStore
	Mailer    Mailer
}

// Run sends one report per administrator and returns the joined delivery errors.
func (j *ReportJob) Run(ctx context.Context) error {
	stats, err := j.Analytics.Stats(ctx)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}
	admins, err := j.Admins.List(ctx)
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}

	subject, body := RenderStatsReport(stats)

	var errs []error
	for _, admin := range admins {
		if err := j.Mailer.Send(ctx, admin.Email, subject, body); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", admin.Email, err))
		}
	}
	return errors.Join(errs...)
}

// InitializeReportScheduler registers job under the given cron spec and starts it.
func InitializeReportScheduler(spec string, job *ReportJob) (*cron.Cron, error) {
	log.Info().Str("spec", spec).Msg("[REPORT-SCHEDULER] Initializing report scheduler...")

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() {
		log.Info().Msg("[REPORT-SCHEDULER] Running scheduled report...")

		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		if err := job.Run(ctx); err != nil {
			log.Error().Err(err).Msg("[REPORT-SCHEDULER] Report failed")
			return
		}
		log.Info().Msg("[REPORT-SCHEDULER] Report sent")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_CRON %q: %w", spec, err)
	}

	c.Start()
	return c, nil
}
