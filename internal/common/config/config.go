// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct. The risk core itself
// carries no configuration; everything here belongs to the worker surface.
type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Notifications NotificationConfig      `mapstructure:"notifications"`
	Metrics       MetricsConfig           `mapstructure:"metrics"`
	Logging       LoggingConfig           `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// WorkerConfig holds the settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

// NotificationConfig configures the send-intervention-notice worker.
type NotificationConfig struct {
	EmailEnabled bool   `mapstructure:"email_enabled"`
	SMSEnabled   bool   `mapstructure:"sms_enabled"`
	FromEmail    string `mapstructure:"from_email"`
	AWSRegion    string `mapstructure:"aws_region"`
}

type MetricsConfig struct {
	Port int `mapstructure:"port"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required")
	}
	if cfg.Notifications.EmailEnabled && cfg.Notifications.FromEmail == "" {
		return fmt.Errorf("notifications.from_email is required when email is enabled")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "delinquency-workers"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Notifications.AWSRegion == "" {
		cfg.Notifications.AWSRegion = "ap-south-1"
	}
}

// WorkerSettings returns the per-worker config with camunda-level fallbacks.
func (c *Config) WorkerSettings(name string) WorkerConfig {
	wc, ok := c.Workers[name]
	if !ok {
		wc = WorkerConfig{Enabled: true}
	}
	if wc.MaxJobsActive == 0 {
		wc.MaxJobsActive = c.Camunda.MaxJobsActive
	}
	if wc.Timeout == 0 {
		wc.Timeout = c.Camunda.Timeout
	}
	return wc
}
