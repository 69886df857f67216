package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/api/metrics"
	"github.com/selvanails/selva-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes push deliveries to a fixed set of workers using
// consistent hashing on the subscription endpoint, so deliveries to the same
// endpoint stay ordered.
type Dispatcher struct {
	workers []chan ports.PushDelivery
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.PushDelivery, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.PushDelivery, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a delivery to the worker responsible for its endpoint.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(delivery ports.PushDelivery) {
	d.workers[d.shardIndex(delivery.Subscription.Endpoint)] <- delivery
}

// shardIndex maps an endpoint deterministically to a worker index.
func (d *Dispatcher) shardIndex(endpoint string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(endpoint))
	return int(h.Sum32()) % len(d.workers)
}

// runWorker drains one shard. Actual delivery to a push provider is out of
// scope; each delivery is recorded in the log and the metrics so the fan-out
// path stays observable.
func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.PushDelivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-ch:
			if !ok {
				return
			}
			metrics.PushDeliveriesTotal.WithLabelValues("delivered").Inc()
			d.log.Debug().
				Str("endpoint", delivery.Subscription.Endpoint).
				Str("notification_id", delivery.Notification.ID).
				Int("worker_id", id).
				Msg("push delivery dispatched")
		}
	}
}
