package compact

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/arloliu/arrayniac/errs"
)

// Parse decodes raw JSON text into the generic value Walk consumes.
// Numbers are kept as gojson.Number so their literal text survives encoding,
// including literals outside the float64 range such as 1e400.
func Parse(data []byte) (any, error) {
	v, err := parseValue(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidInput, err)
	}

	return v, nil
}

func parseValue(data []byte) (any, error) {
	v, err := decodeNumbers(data)
	if err == nil {
		return v, nil
	}

	// UseNumber still range checks every literal; retry keeping raw text.
	if v, rawErr := decodeLiterals(data); rawErr == nil {
		return v, nil
	}

	return nil, err
}

func decodeNumbers(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}

	return v, nil
}

func decodeLiterals(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))

	var raw gojson.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}

	return literal(raw)
}

func expectEOF(dec *gojson.Decoder) error {
	var extra gojson.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}

	return nil
}

func literal(raw gojson.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty value")
	}

	switch raw[0] {
	case '{':
		var fields map[string]gojson.RawMessage
		if err := gojson.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		out := make(map[string]any, len(fields))
		for name, f := range fields {
			v, err := literal(f)
			if err != nil {
				return nil, err
			}
			out[name] = v
		}

		return out, nil
	case '[':
		var items []gojson.RawMessage
		if err := gojson.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := literal(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil
	case '"':
		var s string
		if err := gojson.Unmarshal(raw, &s); err != nil {
			return nil, err
		}

		return s, nil
	case 't', 'f':
		var b bool
		if err := gojson.Unmarshal(raw, &b); err != nil {
			return nil, err
		}

		return b, nil
	case 'n':
		if string(raw) != "null" {
			return nil, fmt.Errorf("invalid literal %q", raw)
		}

		return nil, nil
	default:
		if !validNumber(raw) {
			return nil, fmt.Errorf("invalid number literal %q", raw)
		}

		return gojson.Number(raw), nil
	}
}

// validNumber reports whether b matches the JSON number grammar:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func validNumber(b []byte) bool {
	i := 0
	if i < len(b) && b[i] == '-' {
		i++
	}
	switch {
	case i < len(b) && b[i] == '0':
		i++
	case i < len(b) && b[i] >= '1' && b[i] <= '9':
		i = digits(b, i)
	default:
		return false
	}
	if i < len(b) && b[i] == '.' {
		j := digits(b, i+1)
		if j == i+1 {
			return false
		}
		i = j
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		j := digits(b, i)
		if j == i {
			return false
		}
		i = j
	}

	return i == len(b)
}

func digits(b []byte, i int) int {
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}

	return i
}
