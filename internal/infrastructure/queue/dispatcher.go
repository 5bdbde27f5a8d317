package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

const defaultWorkers = 4

// ErrStopped is returned for jobs submitted after the workers have stopped.
var ErrStopped = errors.New("dispatcher stopped")

// GenerateJob is one label request of a batch.
type GenerateJob struct {
	Input domain.ShipmentInput
}

// GenerateResult holds the outcome of the job at the same index.
type GenerateResult struct {
	Result *ports.LabelResult
	Err    error
}

type task struct {
	ctx context.Context
	job GenerateJob
	out *GenerateResult
	wg  *sync.WaitGroup
}

// Dispatcher runs label generation on a fixed pool of workers. Every job gets
// its own session, so workers share nothing but the service.
type Dispatcher struct {
	tasks   chan task
	stopped chan struct{}
	workers int
	service ports.LabelService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.LabelService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		tasks:   make(chan task),
		stopped: make(chan struct{}),
		workers: numWorkers,
		service: service,
		log:     log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			d.runWorker(ctx, id)
		}(i)
	}
	go func() {
		wg.Wait()
		close(d.stopped)
	}()
}

// Submit runs jobs on the pool and blocks until all have finished. Results
// are in job order. Jobs not yet picked up when ctx ends get ctx's error.
func (d *Dispatcher) Submit(ctx context.Context, jobs []GenerateJob) []GenerateResult {
	results := make([]GenerateResult, len(jobs))
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		t := task{ctx: ctx, job: job, out: &results[i], wg: &wg}
		select {
		case d.tasks <- t:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			wg.Done()
		case <-d.stopped:
			results[i].Err = ErrStopped
			wg.Done()
		}
	}

	wg.Wait()
	return results
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-d.tasks:
			res, err := d.service.Generate(t.ctx, &domain.Session{}, t.job.Input)
			if err != nil {
				d.log.Debug().Err(err).Int("worker_id", id).Msg("batch label failed")
			}
			*t.out = GenerateResult{Result: res, Err: err}
			t.wg.Done()
		}
	}
}
