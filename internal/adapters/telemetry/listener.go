// Package telemetry records builds as OpenTelemetry traces: one span per
// build with a child span per target.
package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/toolbelt/internal/core/ports"
)

// InstrumentationName names the tracer spans are created with.
const InstrumentationName = "go.trai.ch/toolbelt"

const (
	buildSpan = "build"

	attrTarget  attribute.Key = "build.target"
	attrTargets attribute.Key = "build.targets"
	attrCached  attribute.Key = "build.cached"
)

var _ ports.BuildListener = (*SpanListener)(nil)

// SpanListener implements ports.BuildListener with OpenTelemetry spans.
type SpanListener struct {
	tracer trace.Tracer

	mu      sync.Mutex
	ctx     context.Context
	build   trace.Span
	targets map[string]trace.Span
}

// NewSpanListener creates a SpanListener that starts spans on tracer.
func NewSpanListener(tracer trace.Tracer) *SpanListener {
	return &SpanListener{
		tracer:  tracer,
		ctx:     context.Background(),
		targets: make(map[string]trace.Span),
	}
}

// BuildStarted opens the build span.
func (l *SpanListener) BuildStarted(targets []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ctx, l.build = l.tracer.Start(context.Background(), buildSpan,
		trace.WithAttributes(attrTargets.StringSlice(targets)))
}

// TargetStarted opens a span for name below the build span.
func (l *SpanListener) TargetStarted(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, span := l.tracer.Start(l.ctx, name, trace.WithAttributes(attrTarget.String(name)))
	l.targets[name] = span
}

// TargetSkipped records an already ended span for an up-to-date target.
func (l *SpanListener) TargetSkipped(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, span := l.tracer.Start(l.ctx, name, trace.WithAttributes(
		attrTarget.String(name),
		attrCached.Bool(true),
	))
	span.SetStatus(codes.Ok, "")
	span.End()
}

// TargetFinished ends the span of name.
func (l *SpanListener) TargetFinished(name string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	span, ok := l.targets[name]
	if !ok {
		return
	}
	delete(l.targets, name)
	end(span, err)
}

// BuildFinished ends the build span together with any target spans still
// open, which happens when the build is canceled.
func (l *SpanListener) BuildFinished(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for name, span := range l.targets {
		span.AddEvent("interrupted")
		span.End()
		delete(l.targets, name)
	}
	if l.build != nil {
		end(l.build, err)
		l.build = nil
	}
	l.ctx = context.Background()
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
