package scenario

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-collections/pkg/datastructs/stack"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

// ResizeReport holds the duration of one reallocation under each copy
// strategy.
type ResizeReport struct {
	Elements int
	Loop     time.Duration
	Bulk     time.Duration
}

// ResizeTiming fills a stack with ResizeElements values and times copying
// them into a slice twice as large, element by element and with a single
// bulk copy.
func ResizeTiming(ctx context.Context, cfg settings.Scenario, log *zap.Logger) (ResizeReport, error) {
	r := ResizeReport{Elements: cfg.ResizeElements}

	s := stack.New[int]().
		WithMaxCapacity(cfg.MaxCapacity).
		OnResize(resizeLogger(log, "stack"))
	for i := 0; i < cfg.ResizeElements; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}
		if err := s.Push(i); err != nil {
			return r, errors.Wrapf(err, "push %d", i)
		}
	}
	src := slices.Collect(s.All())

	loopDst := make([]int, 2*len(src))
	start := time.Now()
	copyLoop(loopDst, src)
	r.Loop = time.Since(start)

	bulkDst := make([]int, 2*len(src))
	start = time.Now()
	copy(bulkDst, src)
	r.Bulk = time.Since(start)

	if !slices.Equal(loopDst, bulkDst) {
		return r, errors.New("copy strategies disagree")
	}

	log.Info("resize timing complete",
		zap.Int("elements", r.Elements),
		zap.Duration("loop", r.Loop),
		zap.Duration("bulk", r.Bulk),
	)
	return r, nil
}

// copyLoop copies src into dst one element at a time.
func copyLoop(dst, src []int) {
	for i := range src {
		dst[i] = src[i]
	}
}
