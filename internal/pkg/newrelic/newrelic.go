package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application from configuration.
// Returns nil when disabled or when the agent cannot start, so services
// always come up even without APM connectivity.
func InitNewRelic(cfg *models.Config) *newrelic.Application {
	if !cfg.NewRelic.Enabled || cfg.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	logger.Info("Initializing New Relic",
		logger.String("app_name", cfg.NewRelic.AppName),
		logger.Bool("forward_logs", cfg.NewRelic.ForwardLogs))

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it",
			logger.Err(err))
		return nil
	}

	return nrApp
}
