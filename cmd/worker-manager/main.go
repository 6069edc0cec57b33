// cmd/worker-manager/main.go
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"delinquency-workers/internal/common/camunda"
	"delinquency-workers/internal/common/config"
	"delinquency-workers/internal/common/logger"
	"delinquency-workers/internal/common/observability"

	brr "delinquency-workers/internal/workers/assessment/build-risk-response"
	sdr "delinquency-workers/internal/workers/assessment/score-delinquency-risk"
	vir "delinquency-workers/internal/workers/assessment/validate-indicator-record"
	sin "delinquency-workers/internal/workers/notification/send-intervention-notice"
)

// retryWithBackoff retries operation with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	registry := camunda.NewRegistry(zeebeClient, zapLog)

	// --- Register Workers ---
	if wc := cfg.WorkerSettings(vir.TaskType); wc.Enabled {
		handler := vir.NewHandler(
			&vir.Config{
				Timeout: time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		registry.Register(vir.TaskType, wc.MaxJobsActive, handler)
	}

	if wc := cfg.WorkerSettings(sdr.TaskType); wc.Enabled {
		handler := sdr.NewHandler(
			&sdr.Config{
				Timeout: time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		).WithObservability(obs)
		registry.Register(sdr.TaskType, wc.MaxJobsActive, handler)
	}

	if wc := cfg.WorkerSettings(brr.TaskType); wc.Enabled {
		handler := brr.NewHandler(
			&brr.Config{
				AppVersion: cfg.App.Version,
				Timeout:    time.Duration(wc.Timeout) * time.Millisecond,
			},
			log,
		)
		registry.Register(brr.TaskType, wc.MaxJobsActive, handler)
	}

	if wc := cfg.WorkerSettings(sin.TaskType); wc.Enabled {
		handler, err := sin.NewHandler(
			&sin.Config{
				EmailEnabled: cfg.Notifications.EmailEnabled,
				SMSEnabled:   cfg.Notifications.SMSEnabled,
				FromEmail:    cfg.Notifications.FromEmail,
				AWSRegion:    cfg.Notifications.AWSRegion,
				Timeout:      time.Duration(wc.Timeout) * time.Millisecond,
				MaxRetries:   wc.MaxRetries,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create send-intervention-notice handler", zap.Error(err))
		}
		registry.Register(sin.TaskType, wc.MaxJobsActive, handler)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())

		addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
		zapLog.Info("Health/Metrics server listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	registry.Close()
	zapLog.Info("Worker manager stopped gracefully")
}
