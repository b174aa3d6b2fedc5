package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/toolbelt/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*DurationReporter)(nil)

// DurationReporter implements sdktrace.SpanProcessor. It logs how long each
// executed target ran and, once the build span ends, the total build time.
type DurationReporter struct {
	logger ports.Logger
}

// NewDurationReporter creates a DurationReporter writing to logger.
func NewDurationReporter(logger ports.Logger) *DurationReporter {
	return &DurationReporter{logger: logger}
}

// InstallProvider registers a tracer provider feeding processors as the
// global provider and returns it.
func InstallProvider(processors ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}

// OnStart does nothing.
func (r *DurationReporter) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the duration of target and build spans. Up-to-date targets
// are skipped.
func (r *DurationReporter) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	var target string
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case attrCached:
			if kv.Value.AsBool() {
				return
			}
		case attrTarget:
			target = kv.Value.AsString()
		}
	}

	switch {
	case target != "":
		r.logger.Info(fmt.Sprintf("%s: took %s", target, elapsed))
	case s.Name() == buildSpan:
		r.logger.Info("Total time: " + elapsed.String())
	}
}

// ForceFlush does nothing.
func (r *DurationReporter) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *DurationReporter) Shutdown(context.Context) error {
	return nil
}

