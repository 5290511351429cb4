package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talegen/bastille/internal/api/metrics"
	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256

	defaultEnqueueTimeout = 2 * time.Second
	insertTimeout         = 5 * time.Second
)

// ErrQueueFull is returned by Record when no worker accepted the event in time.
var ErrQueueFull = errors.New("audit queue full")

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the actor ID, so one actor's events are persisted in order.
type Dispatcher struct {
	workers        []chan domain.AuditEvent
	repo           ports.AuditRepository
	log            zerolog.Logger
	enqueueTimeout time.Duration
	wg             sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:        make([]chan domain.AuditEvent, numWorkers),
		repo:           repo,
		log:            log,
		enqueueTimeout: defaultEnqueueTimeout,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel and stop
// when ctx is cancelled; Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record enqueues event on the worker responsible for its actor. It blocks
// until the event is accepted, ctx is done, or the enqueue timeout elapses.
func (d *Dispatcher) Record(ctx context.Context, event domain.AuditEvent) error {
	idx := d.shardIndex(event.ActorID)
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx))

	timer := time.NewTimer(d.enqueueTimeout)
	defer timer.Stop()

	// Counted before the send so the worker's Dec never runs first.
	depth.Inc()
	select {
	case d.workers[idx] <- event:
		return nil
	case <-ctx.Done():
		depth.Dec()
		metrics.AuditWriteFailuresTotal.WithLabelValues("context_done").Inc()
		return ctx.Err()
	case <-timer.C:
		depth.Dec()
		metrics.AuditWriteFailuresTotal.WithLabelValues("enqueue_timeout").Inc()
		return ErrQueueFull
	}
}

// shardIndex maps an actor ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(actorID uuid.UUID) int {
	h := fnv.New32a()
	_, _ = h.Write(actorID[:])
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	defer d.wg.Done()
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))

	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case event := <-ch:
					depth.Dec()
					d.persist(context.WithoutCancel(ctx), id, event)
				default:
					return
				}
			}
		case event := <-ch:
			depth.Dec()
			d.persist(ctx, id, event)
		}
	}
}

func (d *Dispatcher) persist(ctx context.Context, id int, event domain.AuditEvent) {
	insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	if err := d.repo.Insert(insertCtx, &event); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues("insert_failed").Inc()
		d.log.Error().Err(err).
			Str("actor_id", event.ActorID.String()).
			Str("target_id", event.TargetID.String()).
			Str("action", string(event.Action)).
			Int("worker_id", id).
			Msg("audit event persistence failed")
	}
}
