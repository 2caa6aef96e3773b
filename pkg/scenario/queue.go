package scenario

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-collections/pkg/datastructs/queue"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

// QueueWindow enqueues 0..QueueOps-1 and dequeues one value whenever more
// than QueueWindow are held. Every dequeued value must be the one enqueued
// QueueWindow steps earlier. It returns the values left in the queue.
func QueueWindow(ctx context.Context, cfg settings.Scenario, log *zap.Logger) ([]int, error) {
	q := queue.NewArray[int]().
		WithMaxCapacity(cfg.MaxCapacity).
		OnResize(resizeLogger(log, "queue"))

	for i := 0; i < cfg.QueueOps; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if err := q.Enqueue(i); err != nil {
			return nil, errors.Wrapf(err, "enqueue %d", i)
		}
		if q.Len() <= cfg.QueueWindow {
			continue
		}

		x, err := q.Dequeue()
		if err != nil {
			return nil, errors.Wrapf(err, "dequeue after enqueue %d", i)
		}
		if want := i - cfg.QueueWindow; x != want {
			return nil, errors.Errorf("dequeued %d after enqueue %d; want %d", x, i, want)
		}
	}

	out := slices.Collect(q.All())
	log.Info("queue window complete",
		zap.Int("ops", cfg.QueueOps),
		zap.Int("window", cfg.QueueWindow),
		zap.Int("capacity", q.Cap()),
		zap.Ints("contents", out),
	)
	return out, nil
}
