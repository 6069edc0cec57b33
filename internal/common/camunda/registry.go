// internal/common/camunda/registry.go
package camunda

import (
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"
)

// JobHandler is implemented by every worker package in internal/workers.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// Registry opens job workers against a shared Zeebe client and closes them
// together on shutdown.
type Registry struct {
	client  zbc.Client
	workers []worker.JobWorker
	logger  *zap.Logger
}

func NewRegistry(client zbc.Client, logger *zap.Logger) *Registry {
	return &Registry{
		client: client,
		logger: logger,
	}
}

// Register opens a job worker for taskType backed by handler.
func (r *Registry) Register(taskType string, maxJobsActive int, handler JobHandler) {
	jobWorker := r.client.NewJobWorker().
		JobType(taskType).
		Handler(handler.Handle).
		MaxJobsActive(maxJobsActive).
		Open()

	r.workers = append(r.workers, jobWorker)
	r.logger.Info("worker registered",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", maxJobsActive),
	)
}

// Close stops all registered workers, then the shared client.
func (r *Registry) Close() {
	for _, w := range r.workers {
		w.Close()
	}
	if err := r.client.Close(); err != nil {
		r.logger.Warn("zeebe client close", zap.Error(err))
	}
	r.logger.Info("all workers stopped")
}
