package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hr-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes login-attempt audit records to a fixed set of workers
// using consistent hashing on the username, so the trail for any single
// identity is written in submission order.
type Dispatcher struct {
	workers []chan ports.LoginAttemptInput
	service ports.AuditService
	log     zerolog.Logger
	done    chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LoginAttemptInput, numWorkers),
		service: service,
		log:     log,
		done:    make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LoginAttemptInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.done)
	}()
}

// Enqueue sends an attempt to the worker responsible for its username.
// The call is non-blocking up to channelBuffer capacity. Once the dispatcher
// has shut down the attempt is dropped with a warning instead of blocking
// the login handler on a channel nobody drains.
func (d *Dispatcher) Enqueue(attempt ports.LoginAttemptInput) {
	select {
	case <-d.done:
		d.log.Warn().Str("username", attempt.Username).Msg("audit dispatcher stopped, dropping attempt")
	case d.workers[d.shardIndex(attempt.Username)] <- attempt:
	}
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LoginAttemptInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case attempt, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, attempt); err != nil {
				d.log.Error().Err(err).
					Str("username", attempt.Username).
					Int("worker_id", id).
					Msg("audit write failed")
			}
		}
	}
}
