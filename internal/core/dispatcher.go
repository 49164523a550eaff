// ABOUTME: Dispatcher routes a detected tag to its handler and normalizes the reply
// ABOUTME: Every failure becomes reply text; nothing propagates to the caller as a fault
package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/harper/tag-router/internal/logging"
	"github.com/harper/tag-router/internal/metrics"
	"github.com/harper/tag-router/internal/models"
)

// UnroutedReply is returned when no marker is found in the message
const UnroutedReply = "No recognized AI service tag found in message. " +
	"Please include [Io], [Lumo], or [Copilot] in your message."

// Result is the outcome of one dispatch
type Result struct {
	Reply   string
	Outcome models.RoutingOutcome
	Err     error // non-nil when the handler failed; Reply already describes it
	Elapsed time.Duration
}

// Failed reports whether the handler returned a failure
func (r Result) Failed() bool {
	return r.Err != nil
}

// Dispatcher holds the tag -> handler table. It is safe for concurrent use.
type Dispatcher struct {
	handlers map[models.Tag]Handler
	metrics  *metrics.Metrics
	logger   *charmlog.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithMetrics records every dispatch on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithLogger overrides the default logger
func WithLogger(l *charmlog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// NewDispatcher creates a dispatcher over handlers. The map is copied.
func NewDispatcher(handlers map[models.Tag]Handler, opts ...Option) *Dispatcher {
	table := make(map[models.Tag]Handler, len(handlers))
	for tag, h := range handlers {
		table[tag] = h
	}
	d := &Dispatcher{handlers: table}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.Get()
	}
	return d
}

// RouteAndDispatch validates message, detects its tag, and dispatches it.
// An empty or whitespace-only message returns models.ErrEmptyMessage and is
// never dispatched.
func (d *Dispatcher) RouteAndDispatch(ctx context.Context, message string) (Result, error) {
	if strings.TrimSpace(message) == "" {
		return Result{}, models.ErrEmptyMessage
	}
	return d.Dispatch(ctx, Detect(message), message), nil
}

// Dispatch produces the reply for an already-detected outcome
func (d *Dispatcher) Dispatch(ctx context.Context, outcome models.RoutingOutcome, message string) Result {
	if !outcome.Routed {
		d.logger.Debug("no tag detected")
		d.metrics.ObserveDispatch("", metrics.OutcomeUnrouted, 0)
		return Result{Reply: UnroutedReply, Outcome: outcome}
	}

	tag := outcome.Tag
	log := d.logger.With("tag", tag)
	log.Debug("detected tag", "marker", tag.Marker())

	start := time.Now()
	reply, err := d.invoke(ctx, tag, message)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("handler failed", "kind", models.KindOf(err), "err", err, "elapsed", elapsed)
		d.metrics.ObserveDispatch(string(tag), metrics.OutcomeFailure, elapsed)
		return Result{
			Reply:   fmt.Sprintf("Error processing request for %s: %v", tag.Marker(), err),
			Outcome: outcome,
			Err:     err,
			Elapsed: elapsed,
		}
	}

	log.Debug("handler replied", "elapsed", elapsed)
	d.metrics.ObserveDispatch(string(tag), metrics.OutcomeSuccess, elapsed)
	return Result{Reply: reply, Outcome: outcome, Elapsed: elapsed}
}

// invoke calls the handler for tag, turning a panic into a failure
func (d *Dispatcher) invoke(ctx context.Context, tag models.Tag, message string) (reply string, err error) {
	h, ok := d.handlers[tag]
	if !ok || h == nil {
		return "", &models.BackendError{
			Kind:    models.ErrorKindConfiguration,
			Backend: string(tag),
			Err:     fmt.Errorf("no handler bound to tag"),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			reply = ""
			err = &models.BackendError{
				Kind:    models.ErrorKindTransport,
				Backend: string(tag),
				Err:     fmt.Errorf("handler panic: %v", r),
			}
		}
	}()

	return h.Generate(ctx, message)
}
