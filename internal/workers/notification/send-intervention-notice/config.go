// internal/workers/notification/send-intervention-notice/config.go
package sendinterventionnotice

import "time"

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	AWSRegion    string
	Timeout      time.Duration
	// MaxRetries overrides the error-code retry default when set.
	MaxRetries int
}

func LoadConfig() *Config {
	return &Config{
		EmailEnabled: true,
		SMSEnabled:   false,
		FromEmail:    "alerts@example.com",
		AWSRegion:    "ap-south-1",
		Timeout:      15 * time.Second,
		MaxRetries:   3,
	}
}
