// internal/workers/assessment/build-risk-response/config.go
package buildriskresponse

import "time"

type Config struct {
	AppVersion string
	Timeout    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		AppVersion: "1.0.0",
		Timeout:    10 * time.Second,
	}
}
