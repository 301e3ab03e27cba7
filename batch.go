package aerovector

import (
	"context"
	"math"
	"runtime"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// Batch evaluates many flight states with a fixed number of workers.
type Batch struct {
	workers int
	logger  kitlog.Logger
}

// NewBatch returns a batch evaluator. A non positive number of workers uses one per CPU.
func NewBatch(workers int, logger kitlog.Logger) *Batch {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Batch{workers, kitlog.With(logger, "subsys", "batch")}
}

// Evaluate returns the aerodynamics of the rocket for each state, in the same order.
// The rocket is only read, so all workers share it.
func (b *Batch) Evaluate(ctx context.Context, r *Rocket, states []FlightState) ([]Aero, error) {
	start := time.Now()
	results := make([]Aero, len(states))
	jobs := make(chan int, b.workers*2)

	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.Evaluate(states[i])
			}
		}()
	}

	fed := 0
feed:
	for i := range states {
		select {
		case <-ctx.Done():
			break feed
		default:
		}
		select {
		case jobs <- i:
			fed++
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	// A cancellation once every state was queued still leaves complete results.
	if fed < len(states) {
		err := ctx.Err()
		b.logger.Log("level", "warning", "rocket", r.Name, "status", "cancelled", "evaluated", fed, "err", err)
		return nil, err
	}
	b.logger.Log("level", "info", "rocket", r.Name, "states", len(states), "workers", b.workers, "duration", time.Since(start))
	return results, nil
}

// SweepAoA returns copies of base with an aoa going from `from` to `to` (rad) by step.
func SweepAoA(from, to, step float64, base FlightState) []FlightState {
	if step <= 0 || to < from {
		return nil
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	states := make([]FlightState, n)
	for i := range states {
		states[i] = base
		states[i].AoA = from + float64(i)*step
	}
	return states
}
