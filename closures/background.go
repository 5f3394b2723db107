package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rmonte/go-features/closures/capture"
)

// demoBackground applies value capture across a goroutine boundary: the
// sampler copies its member before Start returns, so mutating the struct
// while the task runs changes nothing in its output. The parent blocks on
// the join until the bounded loop finishes.
func demoBackground() {
	logger := log.New(os.Stdout, "  ", 0)

	s := &capture.Sampler{
		Value:    123,
		Interval: 50 * time.Millisecond,
		Logger:   logger,
	}

	// The copy is already taken when Start returns; this write can never
	// reach the running task.
	task := s.Start(context.Background(), 3)
	s.Value = 999

	n, err := task.Wait()
	fmt.Printf("  joined after %d samples (err=%v), member is now %d\n", n, err, s.Value)

	// A context deadline stops the task early and the join still returns.
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	s2 := &capture.Sampler{Value: 7, Interval: 50 * time.Millisecond, Logger: logger}
	n, err = s2.Run(ctx, 100) // far more samples than the deadline allows
	fmt.Printf("  deadline cut the run short: %d samples, err=%v\n", n, err)
}
