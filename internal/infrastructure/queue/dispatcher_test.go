package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/talegen/bastille/internal/api/metrics"

	"github.com/talegen/bastille/internal/core/domain"
)

type recordingRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
}

func (r *recordingRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return r.err
}

func (r *recordingRepo) snapshot() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEvent(nil), r.events...)
}

func TestDispatcher_PersistsInActorOrder(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	actor := uuid.New()
	for i := 0; i < 20; i++ {
		ev := domain.AuditEvent{
			ActorID: actor,
			Action:  domain.AuditActionAdminGrant,
			Details: map[string]any{"seq": i},
		}
		if err := d.Record(context.Background(), ev); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	cancel()
	d.Wait()

	got := repo.snapshot()
	if len(got) != 20 {
		t.Fatalf("expected 20 persisted events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Details["seq"] != i {
			t.Fatalf("event %d out of order: %v", i, ev.Details["seq"])
		}
	}
}

func TestDispatcher_SameActorSameShard(t *testing.T) {
	d := NewDispatcher(8, &recordingRepo{}, zerolog.Nop())
	actor := uuid.New()

	first := d.shardIndex(actor)
	for i := 0; i < 10; i++ {
		if idx := d.shardIndex(actor); idx != first {
			t.Fatalf("shard changed from %d to %d", first, idx)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_RecordTimesOutWhenFull(t *testing.T) {
	d := NewDispatcher(1, &recordingRepo{}, zerolog.Nop())
	d.enqueueTimeout = 10 * time.Millisecond

	// Workers are not started; fill the only channel.
	for i := 0; i < channelBuffer; i++ {
		if err := d.Record(context.Background(), domain.AuditEvent{}); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	if err := d.Record(context.Background(), domain.AuditEvent{}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestDispatcher_RecordHonoursContext(t *testing.T) {
	d := NewDispatcher(1, &recordingRepo{}, zerolog.Nop())
	for i := 0; i < channelBuffer; i++ {
		_ = d.Record(context.Background(), domain.AuditEvent{})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Record(ctx, domain.AuditEvent{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDispatcher_InsertFailureDoesNotStopWorker(t *testing.T) {
	repo := &recordingRepo{err: errors.New("mongo down")}
	d := NewDispatcher(1, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for i := 0; i < 3; i++ {
		if err := d.Record(context.Background(), domain.AuditEvent{}); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	cancel()
	d.Wait()

	if n := len(repo.snapshot()); n != 3 {
		t.Fatalf("expected 3 insert attempts, got %d", n)
	}
}

func TestDispatcher_FailedEnqueueLeavesDepthAndLabelsCause(t *testing.T) {
	d := NewDispatcher(1, &recordingRepo{}, zerolog.Nop())
	d.enqueueTimeout = 10 * time.Millisecond
	for i := 0; i < channelBuffer; i++ {
		_ = d.Record(context.Background(), domain.AuditEvent{})
	}

	depth := metrics.AuditQueueDepth.WithLabelValues("0")
	timeouts := metrics.AuditWriteFailuresTotal.WithLabelValues("enqueue_timeout")
	cancels := metrics.AuditWriteFailuresTotal.WithLabelValues("context_done")
	depthBefore := testutil.ToFloat64(depth)
	timeoutsBefore, cancelsBefore := testutil.ToFloat64(timeouts), testutil.ToFloat64(cancels)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Record(ctx, domain.AuditEvent{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := d.Record(context.Background(), domain.AuditEvent{}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	if got := testutil.ToFloat64(depth); got != depthBefore {
		t.Fatalf("queue depth changed on failed enqueue: %v -> %v", depthBefore, got)
	}
	if got := testutil.ToFloat64(cancels) - cancelsBefore; got != 1 {
		t.Fatalf("expected 1 context_done failure, got %v", got)
	}
	if got := testutil.ToFloat64(timeouts) - timeoutsBefore; got != 1 {
		t.Fatalf("expected 1 enqueue_timeout failure, got %v", got)
	}
}

func TestDispatcher_DepthReturnsToZeroAfterDrain(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())
	depth := metrics.AuditQueueDepth.WithLabelValues("0")
	before := testutil.ToFloat64(depth)

	for i := 0; i < 5; i++ {
		if err := d.Record(context.Background(), domain.AuditEvent{}); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	if got := testutil.ToFloat64(depth) - before; got != 5 {
		t.Fatalf("expected depth +5 before workers start, got %v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()
	d.Wait()

	if got := testutil.ToFloat64(depth); got != before {
		t.Fatalf("expected depth back to %v, got %v", before, got)
	}
	if n := len(repo.snapshot()); n != 5 {
		t.Fatalf("expected 5 persisted events, got %d", n)
	}
}
