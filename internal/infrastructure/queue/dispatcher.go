package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Handler processes one routed report.
type Handler interface {
	Handle(ctx context.Context, report domain.Report) error
}

// Dispatcher routes submitted reports to a fixed set of workers using
// consistent hashing on the category, so reports of one category are handled
// in submission order.
type Dispatcher struct {
	workers []chan domain.Report
	handler Handler
	log     zerolog.Logger

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, handler Handler, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Report, numWorkers),
		handler: handler,
		log:     log,
		done:    make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Report, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		d.stopOnce.Do(func() { close(d.done) })
	}()
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() { d.wg.Wait() }

// Enqueue sends a report to the worker responsible for its category. It blocks
// while that worker's buffer is full and drops the report once the dispatcher
// has stopped.
func (d *Dispatcher) Enqueue(report domain.Report) {
	select {
	case d.workers[d.shardIndex(report.Category)] <- report:
	case <-d.done:
		d.log.Warn().Str("reference_id", report.ReferenceID).Msg("dispatcher stopped, report not routed")
	}
}

// shardIndex maps a category deterministically to a worker index.
func (d *Dispatcher) shardIndex(category string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(category))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Report) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case report, ok := <-ch:
			if !ok {
				return
			}
			if err := d.handler.Handle(ctx, report); err != nil {
				d.log.Error().Err(err).
					Str("reference_id", report.ReferenceID).
					Int("worker_id", id).
					Msg("report routing failed")
			}
		}
	}
}
