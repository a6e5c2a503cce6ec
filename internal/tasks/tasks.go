package tasks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Task is a unit of deferred work.
type Task func(ctx context.Context) error

// Dispatcher runs tasks synchronously in-process. It exists so call sites
// are already shaped for a real queue; swapping the implementation later
// does not touch them.
type Dispatcher struct {
	Logger *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{Logger: logger}
}

// Dispatch executes the task immediately and returns its error. Panics are
// recovered and reported as errors so a bad task cannot take the process
// down.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, task Task) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v", name, r)
		}
		d.Logger.Info("task finished",
			zap.String("action", "task_dispatch"),
			zap.String("task", name),
			zap.Duration("took", time.Since(start)),
			zap.Error(err),
		)
	}()

	return task(ctx)
}
