package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/platinummonkey/envurl/pkg/config"
	"github.com/platinummonkey/envurl/pkg/literal"
	"gopkg.in/yaml.v3"
)

// writeValue prints v as YAML or JSON
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		v = normalize(v, true)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case config.OutputYAML, "":
		v = normalize(v, false)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// normalize turns decoded literals into values the encoders accept: dict
// keys become strings and tuples become lists. JSON has no infinities or NaN,
// so with finiteOnly those floats are written as the strings "+Inf", "-Inf"
// and "NaN".
func normalize(v any, finiteOnly bool) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val, finiteOnly)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val, finiteOnly)
		}
		return out
	case literal.Tuple:
		return normalize([]any(t), finiteOnly)
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val, finiteOnly)
		}
		return out
	case float64:
		if finiteOnly && (math.IsInf(t, 0) || math.IsNaN(t)) {
			return strconv.FormatFloat(t, 'g', -1, 64)
		}
		return t
	default:
		return v
	}
}
