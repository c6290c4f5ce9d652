package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"warotator/internal/types"

	"github.com/google/uuid"
)

type RecorderConfig struct {
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	// WriteTimeout bounds a single batch write to one sink.
	WriteTimeout time.Duration
}

// Recorder persists click events off the redirect path. Record only
// enqueues; a single worker enriches events and writes them in batches to
// every sink.
type Recorder struct {
	cfg      RecorderConfig
	sinks    []ClickSink
	enricher Enricher
	metrics  *Metrics
	now      func() time.Time

	clicksBuffer chan types.ClickEvent
	stop         chan struct{}
	done         chan struct{}
	startOnce    sync.Once
	stopOnce     sync.Once

	// mu makes the closed check and the enqueue atomic with respect to Close.
	mu     sync.RWMutex
	closed bool
}

func NewRecorder(cfg RecorderConfig, enricher Enricher, metrics *Metrics, sinks ...ClickSink) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	return &Recorder{
		cfg:          cfg,
		sinks:        sinks,
		enricher:     enricher,
		metrics:      metrics,
		now:          func() time.Time { return time.Now().UTC() },
		clicksBuffer: make(chan types.ClickEvent, cfg.QueueSize),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

func (r *Recorder) Start() {
	r.startOnce.Do(func() { go r.worker() })
}

// Record queues one click. It never blocks: a full queue drops the event
// and reports ErrRecordingFailure.
func (r *Recorder) Record(ctx context.Context, groupID, numberID uuid.UUID, meta types.ClickMetadata) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRecordingFailure, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.metrics.ClicksDropped.Inc()
		return fmt.Errorf("%w: recorder closed", ErrRecordingFailure)
	}

	click := types.NewClickEvent(uuid.New(), groupID, numberID, r.now(), meta)
	select {
	case r.clicksBuffer <- click:
		r.metrics.ClicksQueued.Inc()
		r.metrics.ClickQueueDepth.Set(float64(len(r.clicksBuffer)))
		return nil
	default:
		r.metrics.ClicksDropped.Inc()
		return fmt.Errorf("%w: queue full", ErrRecordingFailure)
	}
}

func (r *Recorder) worker() {
	defer close(r.done)

	var buffer []types.ClickEvent
	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case click := <-r.clicksBuffer:
			buffer = append(buffer, click)
			if len(buffer) >= r.cfg.BatchSize {
				r.flush(buffer)
				buffer = nil
			}
		case <-ticker.C:
			if len(buffer) > 0 {
				r.flush(buffer)
				buffer = nil
			}
		case <-r.stop:
			for {
				select {
				case click := <-r.clicksBuffer:
					buffer = append(buffer, click)
					if len(buffer) >= r.cfg.BatchSize {
						r.flush(buffer)
						buffer = nil
					}
				default:
					if len(buffer) > 0 {
						r.flush(buffer)
					}
					return
				}
			}
		}
	}
}

func (r *Recorder) flush(clicks []types.ClickEvent) {
	r.metrics.ClickQueueDepth.Set(float64(len(r.clicksBuffer)))
	if r.enricher != nil {
		for i := range clicks {
			r.enricher.Enrich(&clicks[i])
		}
	}

	for _, sink := range r.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.WriteTimeout)
		err := sink.InsertClicks(ctx, clicks)
		cancel()
		if err != nil {
			r.metrics.ClickWriteErrors.WithLabelValues(sink.Name()).Inc()
			slog.Error("recording failure", "sink", sink.Name(), "error", err, "size", len(clicks))
			continue
		}
		r.metrics.ClicksWritten.WithLabelValues(sink.Name()).Add(float64(len(clicks)))
	}
}

// Close stops accepting clicks, writes what is still queued and waits for
// the worker up to ctx.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.Start()
	r.stopOnce.Do(func() { close(r.stop) })

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
