// internal/workers/assessment/score-delinquency-risk/config.go
package scoredelinquencyrisk

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
