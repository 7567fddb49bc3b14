package scheduler

import (
	"context"
	"time"

	"trabaho-board/internal/logger"
)

type Task func(ctx context.Context) error

// Every runs task now and then on each tick until ctx is done. Errors are
// logged and do not stop the loop.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	log := logger.Named("scheduler")
	run := func() {
		if err := task(ctx); err != nil {
			log.Warnw("task failed", "task", name, logger.FieldError, err)
		}
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
