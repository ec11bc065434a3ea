package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"amphibians/internal/amphibian"
	"amphibians/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "amphibians/state"

// Holder owns the UiState cell and the fetch/retry lifecycle.
type Holder struct {
	repo   amphibian.Repository
	cell   *Cell[UiState]
	log    zerolog.Logger
	tracer oteltrace.Tracer

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex // guards closed and orders publish against Close
	closed bool

	wg sync.WaitGroup // in-flight fetches
}

// Option configures a Holder.
type Option func(*Holder)

// WithLogger sets the logger used for fetch lifecycle events.
func WithLogger(log zerolog.Logger) Option {
	return func(h *Holder) { h.log = log }
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(h *Holder) { h.tracer = tp.Tracer(tracerName) }
}

// New creates a holder in Loading and starts the first fetch.
// The holder's fetches are cancelled when ctx is done or Close is called.
func New(ctx context.Context, repo amphibian.Repository, opts ...Option) *Holder {
	ctx, cancel := context.WithCancel(ctx)
	h := &Holder{
		repo:   repo,
		cell:   NewCell[UiState](Loading{}),
		log:    zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.load()
	return h
}

// Retry resets to Loading and issues exactly one new fetch.
// Calls while a fetch is in flight are allowed; the last completion wins.
// Retry is a no-op after Close.
func (h *Holder) Retry() {
	h.log.Info().Msg("retry requested")
	h.load()
}

// State returns the current UiState.
func (h *Holder) State() UiState {
	return h.cell.Get()
}

// Subscribe delivers the current state immediately and every later change.
// fn must not call Retry or Close synchronously.
func (h *Holder) Subscribe(fn func(UiState)) (cancel func()) {
	return h.cell.Subscribe(fn)
}

// Close cancels in-flight fetches and waits for them to return. Their
// results are never published.
func (h *Holder) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.cancel()
	h.wg.Wait()
}

func (h *Holder) load() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.ctx.Err() != nil {
		return
	}
	h.cell.Set(Loading{})
	// Add happens under mu, before Close can set closed and Wait.
	h.wg.Add(1)
	go h.fetch(uuid.NewString())
}

// publish sets the state unless the holder is closed.
func (h *Holder) publish(s UiState) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.ctx.Err() != nil {
		return false
	}
	h.cell.Set(s)
	return true
}

func (h *Holder) fetch(id string) {
	defer h.wg.Done()

	log := h.log.With().Str("fetch_id", id).Logger()
	ctx, span := h.tracer.Start(amphibian.WithRequestID(h.ctx, id), "amphibians.fetch",
		oteltrace.WithAttributes(attribute.String("amphibians.fetch_id", id)))
	defer span.End()

	log.Debug().Msg("fetch started")
	start := time.Now()
	records, err := h.call(ctx)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
	}

	var next UiState
	outcome, reason := metrics.OutcomeSuccess, ""
	if err != nil {
		r := amphibian.ReasonOf(err)
		outcome, reason = metrics.OutcomeError, string(r)
		next = Error{Reason: r}
	} else {
		next = Success{Records: records}
	}

	if !h.publish(next) {
		metrics.ObserveFetch(metrics.OutcomeAbandoned, "", elapsed)
		log.Debug().Dur("elapsed", elapsed).Msg("fetch abandoned, holder closed")
		return
	}
	metrics.ObserveFetch(outcome, reason, elapsed)

	if err != nil {
		log.Error().Stack().Err(err).Str("reason", reason).Dur("elapsed", elapsed).Msg("fetch failed")
		return
	}
	span.SetAttributes(attribute.Int("amphibians.count", len(records)))
	log.Info().Int("count", len(records)).Dur("elapsed", elapsed).Msg("fetch succeeded")
}

// call invokes the repository, turning a panic into an error.
func (h *Holder) call(ctx context.Context) (records []amphibian.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("repository panic: %v", r)
		}
	}()
	return h.repo.Amphibians(ctx)
}
