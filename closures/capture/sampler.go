package capture

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Sampler demonstrates capture by copy across a goroutine boundary: Start
// snapshots the Value member and the background task logs that snapshot, so
// later writes to the struct are invisible to it.
//
// The task is bounded and cancellable: it runs an explicit number of
// iterations and stops early when the context is done, so the join in Wait
// can never hang.
type Sampler struct {
	// Value is the member the background task samples. It is copied before
	// Start returns; writes after that never reach the task.
	Value int

	// Interval is the pause between samples. Defaults to 1 s.
	Interval time.Duration

	// Logger receives one line per sample. If nil, log.Default() is used.
	Logger *log.Logger
}

// Task is one launched sampling run. Wait joins it.
type Task struct {
	wg   sync.WaitGroup
	ctx  context.Context
	n    int
	done int // written only by the task goroutine, read after the join
}

// Start snapshots s.Value and launches one background goroutine that logs
// the copy every Interval, n times. The snapshot is taken in the calling
// goroutine, so once Start returns the caller may mutate s freely without
// the task observing it.
func (s *Sampler) Start(ctx context.Context, n int) *Task {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Second
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	t := &Task{ctx: ctx, n: n}
	if n <= 0 {
		return t
	}

	val := s.Value // the snapshot: the task never reads s again

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for t.done < n {
			select {
			case <-ticker.C:
				t.done++
				logger.Printf("[sampler] sample %d/%d value=%d", t.done, n, val)
			case <-ctx.Done():
				logger.Printf("[sampler] stopped after %d/%d samples: %v", t.done, n, ctx.Err())
				return
			}
		}
	}()

	return t
}

// Wait blocks until the task's loop exits and reports the number of
// completed samples. If the context was cancelled before all samples ran,
// Wait returns the partial count together with the context's error.
func (t *Task) Wait() (int, error) {
	t.wg.Wait()

	if err := t.ctx.Err(); err != nil && t.done < t.n {
		return t.done, fmt.Errorf("sampling interrupted: %w", err)
	}
	return t.done, nil
}

// Run is Start followed by Wait: the parent does not proceed until the
// task's loop exits.
func (s *Sampler) Run(ctx context.Context, n int) (int, error) {
	return s.Start(ctx, n).Wait()
}
