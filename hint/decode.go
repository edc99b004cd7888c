package hint

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// UnmarshalText implements encoding.TextUnmarshaler, so a Hint field
// decodes from a plain string under encoding/json, goccy/go-yaml, and
// any other codec that honors the interface. Decoding is total and
// never returns an error.
func (h *Hint) UnmarshalText(text []byte) error {
	*h = Parse(string(text))
	return nil
}

// EnvDecode implements the go-envconfig Decoder interface, so a Hint
// field in an envconfig-processed struct parses from the raw variable
// value.
func (h *Hint) EnvDecode(val string) error {
	*h = Parse(val)
	return nil
}

// DecodeHookFunc returns a mapstructure hook that converts string
// values into Hints wherever the target field is a Hint or *Hint.
// Named string types in the source map are accepted.
func DecodeHookFunc() mapstructure.DecodeHookFunc {
	hintType := reflect.TypeOf(Hint{})
	hintPtrType := reflect.PointerTo(hintType)
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || (to != hintType && to != hintPtrType) {
			return data, nil
		}
		return Parse(reflect.ValueOf(data).String()), nil
	}
}
