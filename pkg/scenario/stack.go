package scenario

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-collections/pkg/datastructs/stack"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

// StackReport records what StackTour observed.
type StackReport struct {
	EmptyBefore    bool
	Size           int
	EmptyAfter     bool
	Peek           int
	ContainsBefore bool // 3 present before the pop
	Popped         int
	ContainsAfter  bool // 3 present after the pop
	Elements       []int
}

// StackTour pushes 1, 2 and 3, inspects the stack, pops the top and lists
// what is left.
func StackTour(ctx context.Context, cfg settings.Scenario, log *zap.Logger) (StackReport, error) {
	var r StackReport
	if err := ctx.Err(); err != nil {
		return r, err
	}

	s := stack.New[int]().
		WithMaxCapacity(cfg.MaxCapacity).
		OnResize(resizeLogger(log, "stack"))

	r.EmptyBefore = s.IsEmpty()
	for _, x := range []int{1, 2, 3} {
		if err := s.Push(x); err != nil {
			return r, errors.Wrapf(err, "push %d", x)
		}
	}

	r.Size = s.Len()
	r.EmptyAfter = s.IsEmpty()
	r.Peek, _ = s.Peek()
	r.ContainsBefore = stack.Contains(s, 3)

	popped, err := s.Pop()
	if err != nil {
		return r, errors.Wrap(err, "pop")
	}
	r.Popped = popped
	r.ContainsAfter = stack.Contains(s, 3)
	r.Elements = slices.Collect(s.All())

	log.Info("stack tour complete",
		zap.Bool("empty_before", r.EmptyBefore),
		zap.Int("size", r.Size),
		zap.Int("peek", r.Peek),
		zap.Int("popped", r.Popped),
		zap.Bool("contains_3_before", r.ContainsBefore),
		zap.Bool("contains_3_after", r.ContainsAfter),
		zap.Ints("elements", r.Elements),
	)
	return r, nil
}
