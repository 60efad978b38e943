package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encoder writes results in one of the output formats.
type Encoder interface {
	Encode(r *Result) error
	Close() error
}

// NewEncoder returns an Encoder for the given format. The json format writes
// one object per line; the yaml format writes one document per result.
func NewEncoder(w io.Writer, format string) Encoder {
	switch format {
	case "json":
		return jsonEncoder{json.NewEncoder(w)}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return yamlEncoder{enc}
	default:
		return textEncoder{w}
	}
}

type jsonEncoder struct{ enc *json.Encoder }

func (e jsonEncoder) Encode(r *Result) error { return e.enc.Encode(r) }

func (jsonEncoder) Close() error { return nil }

type yamlEncoder struct{ enc *yaml.Encoder }

func (e yamlEncoder) Encode(r *Result) error { return e.enc.Encode(r) }

func (e yamlEncoder) Close() error { return e.enc.Close() }

type textEncoder struct{ w io.Writer }

func (enc textEncoder) Encode(r *Result) error {
	_, err := io.WriteString(enc.w, Text(r))
	return err
}

func (textEncoder) Close() error { return nil }

// Text renders a result as human-readable text, for example:
//
//	d/dx (x^2) = 2 * x
//	  at x = 1: 2
//	  check at x = 1: ok (numeric 2.0000000000575113)
func Text(r *Result) string {
	var sb strings.Builder
	if r.Order == 0 {
		sb.WriteString(r.Derivative + "\n")
	} else {
		fmt.Fprintf(&sb, "%s(%s) = %s\n", derivLabel(r.Order), r.Parsed, r.Derivative)
	}
	for _, p := range r.Values {
		fmt.Fprintf(&sb, "  at x = %v: %v\n", p.X, p.Y)
	}
	for _, c := range r.Check {
		fmt.Fprintf(&sb, "  check at x = %v: ", c.X)
		switch {
		case c.Skipped:
			sb.WriteString("skipped\n")
		case c.OK:
			fmt.Fprintf(&sb, "ok (numeric %v)\n", c.Numeric)
		default:
			fmt.Fprintf(&sb, "FAILED (symbolic %v, numeric %v)\n", c.Symbolic, c.Numeric)
		}
	}
	return sb.String()
}

func derivLabel(order int) string {
	if order == 1 {
		return "d/dx "
	}
	return fmt.Sprintf("d^%d/dx^%d ", order, order)
}
