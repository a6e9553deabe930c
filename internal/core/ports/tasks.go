// internal/core/ports/tasks.go
package ports

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskEnqueuer abstracts the asynq client so services can enqueue
// background work without owning the client lifecycle.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
