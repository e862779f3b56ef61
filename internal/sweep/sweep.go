// Package sweep expands named parameter value lists into the cross product
// of simulation points. Expansion is deterministic: parameter names are
// sorted and the last parameter varies fastest, so sim ordering is stable
// across runs.
package sweep

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"vectorgen/internal/domain/types"
)

// Values maps a parameter name to the values it sweeps over.
type Values map[string][]any

// Point is one combination of parameter values.
type Point map[string]any

// Spec is the YAML form of a sweep consumed by the CLI.
type Spec struct {
	Name       string           `yaml:"name"`
	Parameters map[string][]any `yaml:"parameters"`
}

// Load reads a sweep spec from a YAML file.
func Load(path string) (Spec, error) {
	var s Spec
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse sweep spec %s: %w", path, err)
	}
	if len(s.Parameters) == 0 {
		return s, fmt.Errorf("sweep spec %s has no parameters", path)
	}
	return s, nil
}

// Points expands the spec's parameters.
func (s Spec) Points() []Point { return Expand(s.Parameters) }

// Expand returns the cross product of v. An empty value list drops the
// whole sweep to zero points, matching cross-product semantics.
func Expand(v Values) []Point {
	if len(v) == 0 {
		return nil
	}
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 1
	for _, name := range names {
		total *= len(v[name])
	}
	if total == 0 {
		return nil
	}

	points := make([]Point, 0, total)
	idx := make([]int, len(names))
	for {
		p := make(Point, len(names))
		for i, name := range names {
			p[name] = v[name][idx[i]]
		}
		points = append(points, p)

		// Odometer increment, last name fastest.
		i := len(names) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(v[names[i]]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return points
		}
	}
}

// Ints returns the values from (inclusive) to to (exclusive), the usual
// run-number range.
func Ints(from, to int) []any {
	out := make([]any, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

// Float reads a numeric parameter as float64; YAML and JSON decoding may
// deliver either int or float.
func (p Point) Float(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("sweep point has no parameter %q", name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("parameter %q is %T, not numeric", name, v)
	}
}

// Int reads an integer parameter.
func (p Point) Int(name string) (int, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("sweep point has no parameter %q", name)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("parameter %q is %T, not an integer", name, v)
	}
}

// Tags returns the point as simulation tags.
func (p Point) Tags() types.Tags {
	t := make(types.Tags, len(p))
	for k, v := range p {
		t[k] = v
	}
	return t
}
