package hint

import (
	"fmt"
	"log/slog"
	"strings"
)

// Kind identifies the resolution strategy a Hint selects.
type Kind int

const (
	// KindLiteral is the fallback: the hint text is the secret itself.
	KindLiteral Kind = iota
	// KindEnv reads the secret from a named environment variable.
	KindEnv
	// KindFile reads the secret from a file's contents.
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindEnv:
		return "env"
	case KindFile:
		return "file"
	default:
		return "literal"
	}
}

// redactedMarker replaces literal secret material in any formatted output.
const redactedMarker = "***SECRET***"

// Hint is the parsed form of a secret hint. Exactly one kind is active
// and it never changes after construction. The zero value is Literal("").
type Hint struct {
	kind  Kind
	param string
}

// EnvVar constructs a hint that resolves the named environment variable.
func EnvVar(name string) Hint { return Hint{kind: KindEnv, param: name} }

// FilePath constructs a hint that resolves the contents of path.
func FilePath(path string) Hint { return Hint{kind: KindFile, param: path} }

// Literal constructs a hint whose secret is value itself.
func Literal(value string) Hint { return Hint{kind: KindLiteral, param: value} }

// Parse classifies raw into one of the three hint kinds.
//
// The text before the first colon is matched case-sensitively against
// the scheme tokens "env" and "file"; everything after the colon is the
// parameter, untrimmed. Any other input, including text with no colon,
// an unrecognized scheme, or the empty string, is a literal of the
// whole raw input. Parse never fails.
//
// There is no escaping syntax: a literal secret that itself starts with
// "env:" or "file:" cannot be expressed through this grammar.
func Parse(raw string) Hint {
	if scheme, rest, ok := strings.Cut(raw, ":"); ok {
		switch scheme {
		case "env":
			return EnvVar(rest)
		case "file":
			return FilePath(rest)
		}
	}
	return Literal(raw)
}

// Kind reports which resolution strategy this hint selects.
func (h Hint) Kind() Kind { return h.kind }

// IsEnv reports whether the secret will be read from an environment variable.
func (h Hint) IsEnv() bool { return h.kind == KindEnv }

// IsFile reports whether the secret will be read from a file.
func (h Hint) IsFile() bool { return h.kind == KindFile }

// IsLiteral reports whether the hint text is the secret itself.
func (h Hint) IsLiteral() bool { return h.kind == KindLiteral }

// EnvName returns the environment variable name, or "" for other kinds.
func (h Hint) EnvName() string {
	if h.kind == KindEnv {
		return h.param
	}
	return ""
}

// Path returns the file path, or "" for other kinds.
func (h Hint) Path() string {
	if h.kind == KindFile {
		return h.param
	}
	return ""
}

// ExposeLiteral returns the literal secret value, or "" for other kinds.
//
// The name is deliberately grep-able: only resolution code and tests
// should call it. All default formatting paths redact instead.
func (h Hint) ExposeLiteral() string {
	if h.kind == KindLiteral {
		return h.param
	}
	return ""
}

// String renders the hint for diagnostics. Variable names and file
// paths are non-sensitive metadata and print verbatim; a literal prints
// as the redaction marker so hints are safe to log.
func (h Hint) String() string {
	switch h.kind {
	case KindEnv:
		return "env:" + h.param
	case KindFile:
		return "file:" + h.param
	default:
		return redactedMarker
	}
}

// GoString implements fmt.GoStringer so %#v cannot leak a literal.
func (h Hint) GoString() string {
	switch h.kind {
	case KindEnv:
		return fmt.Sprintf("hint.EnvVar(%q)", h.param)
	case KindFile:
		return fmt.Sprintf("hint.FilePath(%q)", h.param)
	default:
		return "hint.Literal(" + redactedMarker + ")"
	}
}

// LogValue implements slog.LogValuer with the same redaction as String.
func (h Hint) LogValue() slog.Value {
	return slog.StringValue(h.String())
}
