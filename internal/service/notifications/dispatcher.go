package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

const (
	DefaultBufferSize  = 64
	DefaultSendTimeout = 10 * time.Second

	resultSent    = "sent"
	resultFailed  = "failed"
	resultDropped = "dropped"
)

// Dispatcher доставляет доменные события во все каналы уведомлений
// Бизнес-операции только публикуют событие и не ждут доставки
type Dispatcher struct {
	sinks       []Sink
	metrics     Metrics
	logger      Logger
	sendTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	events chan domain.Event
	done   chan struct{}
}

// NewDispatcher создает диспетчер; без каналов доставки события только логируются
func NewDispatcher(sinks []Sink, metrics Metrics, logger Logger, bufferSize int, sendTimeout time.Duration) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}
	if len(sinks) == 0 {
		sinks = []Sink{NewLogSink(logger)}
	}

	return &Dispatcher{
		sinks:       sinks,
		metrics:     metrics,
		logger:      logger,
		sendTimeout: sendTimeout,
		events:      make(chan domain.Event, bufferSize),
		done:        make(chan struct{}),
	}
}

// Publish ставит событие в очередь без блокировки
// При переполненной очереди или после Close событие отбрасывается
func (d *Dispatcher) Publish(event domain.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Notifications: dispatcher closed, event %s dropped", event.Kind)
		d.metrics.IncNotification("queue", resultDropped)
		return
	}

	select {
	case d.events <- event:
	default:
		d.logger.Warn("Notifications: queue is full, event %s dropped", event.Kind)
		d.metrics.IncNotification("queue", resultDropped)
	}
}

// Run обрабатывает очередь до Close или отмены ctx
// При отмене ctx оставшиеся в очереди события всё равно доставляются
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)

	for {
		select {
		case <-ctx.Done():
			d.drain()
			return
		case event, ok := <-d.events:
			if !ok {
				return
			}
			d.deliver(ctx, event)
		}
	}
}

// Close закрывает очередь; Run доставит накопленные события и завершится
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.closed {
		d.closed = true
		close(d.events)
	}
}

// Done закрывается после завершения Run
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

func (d *Dispatcher) drain() {
	for {
		select {
		case event, ok := <-d.events:
			if !ok {
				return
			}
			d.deliver(context.Background(), event)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event domain.Event) {
	text := Format(event)
	if text == "" {
		d.logger.Warn("Notifications: nothing to send for event %s", event.Kind)
		return
	}

	for _, sink := range d.sinks {
		// остановка Run не прерывает уже начатую доставку
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.sendTimeout)
		err := sink.Send(sendCtx, text)
		cancel()

		if err != nil {
			d.logger.Error("Notifications: failed to send %s via %s: %v", event.Kind, sink.Name(), err)
			d.metrics.IncNotification(sink.Name(), resultFailed)
			continue
		}

		d.logger.Info("Notifications: %s sent via %s", event.Kind, sink.Name())
		d.metrics.IncNotification(sink.Name(), resultSent)
	}
}
