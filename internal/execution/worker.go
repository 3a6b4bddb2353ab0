package execution

import (
	"sync"
	"sync/atomic"

	"gtl/internal/domain"
)

// Progress receives per-name resolution updates
type Progress interface {
	Update(successCount, failCount int)
	Finish()
}

// WorkerPool resolves names on a fixed number of goroutines
type WorkerPool struct {
	workers   int
	scheduler Scheduler
	progress  Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(workers int, scheduler Scheduler) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return &WorkerPool{
		workers:   workers,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// ResolveAll resolves every name and returns the selectors in input order.
// It fails with the error of the first failing name in input order, exactly as
// a sequential loop would; names after a known failure are skipped.
func (wp *WorkerPool) ResolveAll(names []string, resolve func(name string) (domain.Selector, error)) ([]domain.Selector, error) {
	if len(names) == 0 {
		return []domain.Selector{}, nil
	}

	selectors := make([]domain.Selector, len(names))
	errs := make([]error, len(names))

	var firstFailure atomic.Int64
	firstFailure.Store(int64(len(names)))

	var mu sync.Mutex
	var succeeded, failed int

	var wg sync.WaitGroup
	for _, batch := range wp.scheduler.Schedule(len(names), wp.workers) {
		if len(batch) == 0 {
			continue
		}
		wg.Add(1)
		go func(batch []int) {
			defer wg.Done()
			for _, i := range batch {
				if int64(i) > firstFailure.Load() {
					return
				}
				selector, err := resolve(names[i])
				if err != nil {
					errs[i] = err
					lowerFailure(&firstFailure, int64(i))
				} else {
					selectors[i] = selector
				}

				mu.Lock()
				if err != nil {
					failed++
				} else {
					succeeded++
				}
				if wp.progress != nil {
					wp.progress.Update(succeeded, failed)
				}
				mu.Unlock()
			}
		}(batch)
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}

	if i := firstFailure.Load(); i < int64(len(names)) {
		return nil, errs[i]
	}
	return selectors, nil
}

// lowerFailure records i as the first failing index if it precedes the current one
func lowerFailure(first *atomic.Int64, i int64) {
	for {
		current := first.Load()
		if i >= current || first.CompareAndSwap(current, i) {
			return
		}
	}
}
