package hub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"event-dispatch/internal/common/errors"
	"event-dispatch/internal/common/logging"
	"event-dispatch/internal/events"
)

// DefaultQueueSize is the envelope buffer size for an async hub.
const DefaultQueueSize = 256

// deliveryTimeout bounds a single downstream delivery attempt.
const deliveryTimeout = 30 * time.Second

type envelope struct {
	id         string
	event      events.Event
	triggerIDs []string
}

// AsyncHub decouples the dispatch engine from downstream delivery: an
// enqueue either succeeds immediately or fails with a dispatch error when
// the buffer is full. A single worker drains the queue into the inner
// hub; the caller never blocks on delivery.
type AsyncHub struct {
	inner  events.Hub
	queue  chan envelope
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
	logger logging.Logger
}

// NewAsyncHub wraps an inner hub with a buffered queue of the given size.
// A size below one falls back to DefaultQueueSize.
func NewAsyncHub(inner events.Hub, queueSize int) *AsyncHub {
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}

	h := &AsyncHub{
		inner: inner,
		queue: make(chan envelope, queueSize),
		logger: logging.GetGlobalLogger().WithFields(
			logging.Field{Key: "component", Value: "async_hub"},
		),
	}

	h.wg.Add(1)
	go h.deliverLoop()

	return h
}

// Dispatch enqueues the event and matched trigger identifiers for
// delivery. It never waits for the downstream system.
func (h *AsyncHub) Dispatch(ctx context.Context, event events.Event, triggerIDs []string) error {
	if err := ctx.Err(); err != nil {
		return errors.DispatchError("dispatch cancelled", err)
	}

	env := envelope{
		id:         uuid.NewString(),
		event:      event,
		triggerIDs: append([]string(nil), triggerIDs...),
	}

	// The read lock excludes Close, so the queue cannot be closed while a
	// send is in flight.
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return errors.DispatchError("event hub is closed", nil)
	}

	select {
	case h.queue <- env:
		return nil
	default:
		return errors.DispatchError("event hub queue is full", nil).
			WithContext("queue_size", cap(h.queue))
	}
}

// Close stops accepting envelopes and waits until the queue is drained.
// Dispatch calls arriving after Close fail with a dispatch error.
func (h *AsyncHub) Close() {
	h.mu.Lock()
	alreadyClosed := h.closed
	h.closed = true
	h.mu.Unlock()

	if !alreadyClosed {
		close(h.queue)
	}
	h.wg.Wait()
}

func (h *AsyncHub) deliverLoop() {
	defer h.wg.Done()

	for env := range h.queue {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		err := h.inner.Dispatch(ctx, env.event, env.triggerIDs)
		cancel()

		if err != nil {
			// Delivery retries are the downstream system's concern; a
			// failed hand-off is reported and dropped here.
			h.logger.Error("Event hub delivery failed", err,
				logging.String("dispatch_id", env.id),
				logging.Int("trigger_count", len(env.triggerIDs)),
			)
			continue
		}

		h.logger.Debug("Event hub delivery completed",
			logging.String("dispatch_id", env.id),
			logging.Int("trigger_count", len(env.triggerIDs)),
		)
	}
}
