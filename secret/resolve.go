package secret

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/secrethint/hint"
)

// Resolver turns hints into Values. The zero value resolves without
// telemetry; use NewResolver with options to attach a meter, tracer,
// or logger. Resolvers hold no per-call state and are safe for
// concurrent use.
type Resolver struct {
	meter   metric.Meter
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics *resolveMetrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMeter attaches an OpenTelemetry meter; resolution counts and
// durations are recorded against it.
func WithMeter(m metric.Meter) Option {
	return func(r *Resolver) { r.meter = m }
}

// WithTracer attaches an OpenTelemetry tracer; each resolution runs
// inside a "secret.resolve" span.
func WithTracer(t trace.Tracer) Option {
	return func(r *Resolver) { r.tracer = t }
}

// WithLogger attaches a logger for debug-level resolution outcomes.
// Log lines carry the hint scheme and error only, never content.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a Resolver. It fails only if instrument creation
// on a supplied meter fails.
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.meter != nil {
		m, err := newResolveMetrics(r.meter)
		if err != nil {
			return nil, fmt.Errorf("secret: creating instruments: %w", err)
		}
		r.metrics = m
	}
	return r, nil
}

var defaultResolver = &Resolver{}

// Resolve resolves h with the default (telemetry-free) Resolver.
func Resolve(ctx context.Context, h hint.Hint) (*Value, error) {
	return defaultResolver.Resolve(ctx, h)
}

// Resolve performs the single lookup h calls for and returns the
// secret in a redacting Value.
//
// Env hints read the named process environment variable verbatim.
// File hints read the whole file and strip exactly one trailing line
// terminator (LF or CRLF), the usual convention for secret files.
// Literal hints succeed without I/O. Nothing is cached: resolving the
// same hint again repeats the lookup and may observe a changed source.
//
// Failures are terminal for the call and match one of the sentinel
// errors via errors.Is. The context carries telemetry only; resolution
// itself is a single blocking operation with no cancellation points.
func (r *Resolver) Resolve(ctx context.Context, h hint.Hint) (*Value, error) {
	scheme := h.Kind().String()

	var span trace.Span
	if r.tracer != nil {
		ctx, span = r.tracer.Start(ctx, "secret.resolve",
			trace.WithAttributes(attribute.String("hint.scheme", scheme)))
	}

	start := time.Now()
	v, err := resolve(h)
	elapsed := time.Since(start)

	r.metrics.record(ctx, scheme, elapsed, err)
	if span != nil {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "resolution failed")
		}
		span.End()
	}
	if r.logger != nil {
		if err != nil {
			r.logger.DebugContext(ctx, "secret resolution failed",
				slog.String("scheme", scheme), slog.Any("error", err))
		} else {
			r.logger.DebugContext(ctx, "secret resolved",
				slog.String("scheme", scheme))
		}
	}
	return v, err
}

func resolve(h hint.Hint) (*Value, error) {
	switch h.Kind() {
	case hint.KindEnv:
		return resolveEnv(h.EnvName())
	case hint.KindFile:
		return resolveFile(h.Path())
	default:
		return New(h.ExposeLiteral()), nil
	}
}

func resolveEnv(name string) (*Value, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty variable name", ErrMissingVariable)
	}
	val, ok := os.LookupEnv(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingVariable, name)
	}
	if !utf8.ValidString(val) {
		return nil, fmt.Errorf("%w: variable %q", ErrInvalidEncoding, name)
	}
	return New(val), nil
}

func resolveFile(path string) (*Value, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFileNotFound)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	if !utf8.Valid(data) {
		zero(data)
		return nil, fmt.Errorf("%w: file %q", ErrInvalidEncoding, path)
	}
	return newValue(trimLineTerminator(data)), nil
}

// trimLineTerminator strips one trailing "\n" or "\r\n", zeroing the
// stripped bytes so they don't outlive the Value.
func trimLineTerminator(data []byte) []byte {
	if n := len(data); n > 0 && data[n-1] == '\n' {
		data[n-1] = 0
		data = data[:n-1]
		if n := len(data); n > 0 && data[n-1] == '\r' {
			data[n-1] = 0
			data = data[:n-1]
		}
	}
	return data
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
