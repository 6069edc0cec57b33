// internal/workers/assessment/validate-indicator-record/config.go
package validateindicatorrecord

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
