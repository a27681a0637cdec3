package main

import (
	"context"

	"github.com/fenilmodi00/ipo-monitor/config"
	"github.com/fenilmodi00/ipo-monitor/jobs"
	"github.com/fenilmodi00/ipo-monitor/services"
	"github.com/fenilmodi00/ipo-monitor/shared"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load config
	cfg := config.LoadConfig()

	// Configure logging
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if missing := cfg.Validate(); len(missing) > 0 {
		// The run proceeds; the stage that needed the value reports the failure.
		logrus.Warnf("Missing configuration: %v", missing)
	}

	// Initialize services
	httpClient := shared.NewHTTPClient(cfg.HTTPTimeout)
	finnhubService := services.NewFinnhubService(cfg, httpClient)
	filterService := services.NewFilterService()
	emailService := services.NewEmailService(cfg)

	// Run the monitor once and exit. Failures are absorbed into the report
	// and the log output; the process always exits 0.
	job := jobs.NewIPOMonitorJob(finnhubService, filterService, emailService)
	report := job.Run(context.Background())

	if report.FetchErr != nil || report.NotifyErr != nil {
		logrus.Warn("IPO Monitor completed with degraded results, see log output above")
	}
}
