// Package scenario runs the demonstration workloads for the array containers:
// a sliding-window queue, a tour of the stack operations and a comparison of
// copy strategies used when a backing slice is reallocated.
package scenario

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-collections/pkg/settings"
)

// checkEvery is how many loop iterations pass between context checks.
const checkEvery = 1024

// Results collects the outcome of RunAll.
type Results struct {
	Queue  []int
	Stack  StackReport
	Resize ResizeReport
}

// RunAll runs every scenario concurrently. Each scenario owns its containers.
func RunAll(ctx context.Context, cfg settings.Scenario, log *zap.Logger) (*Results, error) {
	var res Results
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := QueueWindow(ctx, cfg, log)
		res.Queue = out
		return err
	})
	g.Go(func() error {
		out, err := StackTour(ctx, cfg, log)
		res.Stack = out
		return err
	})
	g.Go(func() error {
		out, err := ResizeTiming(ctx, cfg, log)
		res.Resize = out
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

// resizeLogger returns an OnResize observer logging at debug level.
func resizeLogger(log *zap.Logger, container string) func(from, to int) {
	log = log.With(zap.String("container", container))
	return func(from, to int) {
		log.Debug("resized", zap.Int("from", from), zap.Int("to", to))
	}
}
