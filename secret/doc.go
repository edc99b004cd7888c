// Package secret resolves parsed hints into secret values and holds
// them in a container that is safe to pass around.
//
// Resolve performs at most one lookup per call (an environment read or
// a file read) and returns a *Value. There is no caching and no retry:
// resolving the same hint twice hits the source twice.
//
// Value redacts itself on every default formatting path (%v, %s, %#v,
// encoding/json, log/slog) and only yields its content through the
// grep-able ExposeSecret accessor. Destroy zeroes the backing buffer;
// this is best-effort, since copies handed out by ExposeSecret and any
// GC-internal copies are outside the container's control.
//
// Telemetry is opt-in: construct a Resolver with WithMeter, WithTracer,
// or WithLogger to record resolution counts, durations, spans, and
// debug logs. Only the hint scheme is attached as an attribute; names,
// paths, and values never reach telemetry.
package secret
