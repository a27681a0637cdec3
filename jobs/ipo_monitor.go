package jobs

import (
	"context"
	"time"

	"github.com/fenilmodi00/ipo-monitor/models"
	"github.com/fenilmodi00/ipo-monitor/services"
	"github.com/fenilmodi00/ipo-monitor/shared"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CalendarFetcher yields today's raw IPO calendar events
type CalendarFetcher interface {
	FetchTodaysIPOs(ctx context.Context) services.FetchResult
}

// Notifier delivers the summary for a run
type Notifier interface {
	Send(ipos []models.QualifyingIPO, today string) *shared.ServiceError
}

// RunReport summarizes one monitor run. The process exits 0 regardless of the
// error fields; main logs them and a future caller can change that policy
// here without touching the pipeline.
type RunReport struct {
	Fetched    int
	Qualifying int
	FetchErr   *shared.ServiceError
	NotifyErr  *shared.ServiceError
}

type IPOMonitorJob struct {
	Fetcher       CalendarFetcher
	FilterService *services.FilterService
	Notifier      Notifier
	Metrics       *shared.ServiceMetrics
}

func NewIPOMonitorJob(fetcher CalendarFetcher, filterService *services.FilterService, notifier Notifier) *IPOMonitorJob {
	return &IPOMonitorJob{
		Fetcher:       fetcher,
		FilterService: filterService,
		Notifier:      notifier,
		Metrics:       shared.NewServiceMetrics("IPO_Monitor_Job"),
	}
}

// Run performs one fetch-filter-notify pass. A failed fetch degrades to zero
// events and the notification is still sent, so a scheduled run always
// reports something; both failures are carried in the returned report.
func (j *IPOMonitorJob) Run(ctx context.Context) RunReport {
	runID := uuid.New().String()
	today := time.Now().Format("2006-01-02")
	log := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"date":   today,
	})

	log.Infof("Running IPO Monitor at %s", time.Now().Format(time.RFC3339))

	fetchStart := time.Now()
	result := j.Fetcher.FetchTodaysIPOs(ctx)
	j.Metrics.RecordRequest(result.Err == nil, time.Since(fetchStart))

	if result.Err != nil {
		result.Err.LogError()
		log.Warn("Fetch failed, continuing with zero IPOs")
	}
	log.Infof("Found %d IPO(s) scheduled for today", len(result.Events))

	qualifying := j.FilterService.FilterLargeIPOs(result.Events)
	log.Infof("Found %d IPO(s) above $200M threshold", len(qualifying))

	notifyStart := time.Now()
	notifyErr := j.Notifier.Send(qualifying, today)
	j.Metrics.RecordRequest(notifyErr == nil, time.Since(notifyStart))

	if notifyErr != nil {
		notifyErr.LogError()
		log.Warn("Notification failed, run continues to normal completion")
	}

	j.Metrics.LogSummary()
	log.WithFields(logrus.Fields{
		"fetched":       len(result.Events),
		"qualifying":    len(qualifying),
		"fetch_failed":  result.Err != nil,
		"notify_failed": notifyErr != nil,
	}).Info("IPO Monitor completed")

	return RunReport{
		Fetched:    len(result.Events),
		Qualifying: len(qualifying),
		FetchErr:   result.Err,
		NotifyErr:  notifyErr,
	}
}
