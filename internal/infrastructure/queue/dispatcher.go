package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/api/metrics"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher fans audit entries out to a fixed set of workers,
// sharded by actor ID so one actor's trail stays in order. Record never
// blocks: when a worker's channel is full the entry is dropped and
// counted, because audit must not sit on the request path.
type AuditDispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until all workers have stopped.
func (d *AuditDispatcher) Wait() {
	d.wg.Wait()
}

// Record implements ports.AuditSink.
func (d *AuditDispatcher) Record(e domain.AuditEntry) {
	idx := d.shardIndex(e.ActorID)
	select {
	case d.workers[idx] <- e:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().Str("actor_id", e.ActorID).Str("action", e.Action).Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor ID deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	defer d.wg.Done()
	gauge := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			// Drain whatever is already queued before exiting.
			for {
				select {
				case e := <-ch:
					d.persist(e)
				default:
					return
				}
			}
		case e := <-ch:
			d.persist(e)
			gauge.Set(float64(len(ch)))
		}
	}
}

func (d *AuditDispatcher) persist(e domain.AuditEntry) {
	// The request context is long gone by the time an entry is written;
	// use a background context so shutdown draining can still flush.
	if err := d.repo.Insert(context.Background(), e); err != nil {
		d.log.Error().Err(err).
			Str("actor_id", e.ActorID).
			Str("action", e.Action).
			Msg("audit insert failed")
	}
}
