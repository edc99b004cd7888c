package secret

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestValue_ExposeSecret(t *testing.T) {
	v := New("hunter2")
	defer v.Destroy()

	if got := v.ExposeSecret(); got != "hunter2" {
		t.Fatalf("ExposeSecret() = %q, want %q", got, "hunter2")
	}
}

func TestValue_FormattingAlwaysRedacts(t *testing.T) {
	for _, content := range []string{"hunter2", ""} {
		v := New(content)

		outputs := map[string]string{
			"String": v.String(),
			"%v":     fmt.Sprintf("%v", v),
			"%s":     fmt.Sprintf("%s", v),
			"%#v":    fmt.Sprintf("%#v", v),
			"Sprint": fmt.Sprint(v),
		}
		for verb, out := range outputs {
			if content != "" && strings.Contains(out, content) {
				t.Fatalf("%s leaks content: %q", verb, out)
			}
			if !strings.Contains(out, Redacted) {
				t.Fatalf("%s missing redaction marker: %q", verb, out)
			}
		}
		v.Destroy()
	}
}

func TestValue_JSONMarshalRedacts(t *testing.T) {
	v := New("hunter2")
	defer v.Destroy()

	out, err := json.Marshal(map[string]*Value{"password": v})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if bytes.Contains(out, []byte("hunter2")) {
		t.Fatalf("json.Marshal leaks content: %s", out)
	}
	if !bytes.Contains(out, []byte(Redacted)) {
		t.Fatalf("json.Marshal missing marker: %s", out)
	}
}

func TestValue_SlogRedacts(t *testing.T) {
	v := New("hunter2")
	defer v.Destroy()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("credentials loaded", "password", v)

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Fatalf("slog output leaks content: %s", out)
	}
	if !strings.Contains(out, Redacted) {
		t.Fatalf("slog output missing marker: %s", out)
	}
}

func TestValue_Equal(t *testing.T) {
	a := New("hunter2")
	b := New("hunter2")
	c := New("hunter3")
	empty := New("")
	defer a.Destroy()
	defer b.Destroy()
	defer c.Destroy()
	defer empty.Destroy()

	if !a.Equal(b) {
		t.Fatalf("Equal() = false for identical content")
	}
	if a.Equal(c) {
		t.Fatalf("Equal() = true for different content")
	}
	if a.Equal(empty) {
		t.Fatalf("Equal() = true against empty value")
	}
	if !a.Equal(a) {
		t.Fatalf("Equal() = false for self")
	}

	var nilVal *Value
	if a.Equal(nil) || nilVal.Equal(a) {
		t.Fatalf("Equal() = true against nil")
	}
	if !nilVal.Equal(nil) {
		t.Fatalf("nil.Equal(nil) = false")
	}
}

func TestValue_Clone(t *testing.T) {
	v := New("hunter2")
	c := v.Clone()

	if !v.Equal(c) {
		t.Fatalf("clone does not equal original")
	}

	// Destroying the original must not affect the clone.
	v.Destroy()
	if got := c.ExposeSecret(); got != "hunter2" {
		t.Fatalf("clone after original destroyed = %q, want %q", got, "hunter2")
	}
	c.Destroy()
}

func TestValue_DestroyZeroesBuffer(t *testing.T) {
	v := New("hunter2")
	buf := v.buf // white-box: keep a view of the backing array

	v.Destroy()

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %x", i, b)
		}
	}
	if v.ExposeSecret() != "" {
		t.Fatalf("destroyed value still exposes content")
	}
	if v.String() != Redacted {
		t.Fatalf("destroyed value String() = %q", v.String())
	}

	// Idempotent.
	v.Destroy()
}

func TestValue_DestroyedComparesAsEmpty(t *testing.T) {
	a := New("hunter2")
	b := New("hunter2")
	a.Destroy()

	if a.Equal(b) {
		t.Fatalf("destroyed value still equals former content")
	}

	empty := New("")
	defer empty.Destroy()
	defer b.Destroy()
	if !a.Equal(empty) {
		t.Fatalf("destroyed value should compare as empty")
	}
}
