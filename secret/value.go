package secret

import (
	"crypto/subtle"
	"log/slog"
	"runtime"
)

// Redacted is the fixed marker every default formatting path emits in
// place of secret content.
const Redacted = "***SECRET***"

// Value is the sole holder of resolved secret material.
//
// Default formatting (fmt verbs, encoding/json, log/slog) always emits
// Redacted; the content is reachable only through ExposeSecret. A Value
// has pointer semantics and is never duplicated implicitly: use Clone
// when a second owner is genuinely needed.
//
// A Value is not safe for concurrent use with Destroy.
type Value struct {
	buf []byte
}

// New creates a Value holding s. Intended for tests and for callers
// that already have the secret in hand; resolved secrets come from
// Resolve.
func New(s string) *Value {
	return newValue([]byte(s))
}

// newValue takes ownership of buf.
func newValue(buf []byte) *Value {
	v := &Value{buf: buf}
	// Backstop for owners that forget Destroy. Go may have moved or
	// copied the bytes before this runs, so explicit Destroy at end of
	// use remains the real guarantee.
	runtime.SetFinalizer(v, (*Value).Destroy)
	return v
}

// ExposeSecret returns the secret content.
//
// The name is deliberately grep-able so accidental uses stand out in
// review. The returned string is a copy; it cannot be scrubbed by
// Destroy, so keep its lifetime short.
func (v *Value) ExposeSecret() string {
	return string(v.buf)
}

// Equal compares two Values in constant time with respect to content,
// so a mismatch position cannot be recovered through timing. Lengths
// are not hidden. Destroyed Values compare as empty.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	return subtle.ConstantTimeCompare(v.buf, other.buf) == 1
}

// Clone returns an independent copy of the Value. This is the only
// sanctioned way to duplicate secret material; both copies must be
// destroyed separately.
func (v *Value) Clone() *Value {
	buf := make([]byte, len(v.buf))
	copy(buf, v.buf)
	return newValue(buf)
}

// Destroy zeroes the backing buffer and releases it. The Value behaves
// as empty afterwards. Destroy is idempotent.
func (v *Value) Destroy() {
	for i := range v.buf {
		v.buf[i] = 0
	}
	v.buf = nil
	runtime.SetFinalizer(v, nil)
}

// String implements fmt.Stringer and always redacts.
func (v *Value) String() string { return Redacted }

// GoString implements fmt.GoStringer so %#v cannot leak content.
func (v *Value) GoString() string { return "secret.Value(" + Redacted + ")" }

// MarshalText implements encoding.TextMarshaler with the redaction
// marker, which also covers encoding/json and any logger that falls
// back to text marshaling.
func (v *Value) MarshalText() ([]byte, error) { return []byte(Redacted), nil }

// LogValue implements slog.LogValuer and always redacts.
func (v *Value) LogValue() slog.Value { return slog.StringValue(Redacted) }
