package filter

import (
	"strings"

	"github.com/s0up4200/safetydash/schema"
)

var defaultCompiler = NewCompiler(WithCache(100))

// Compile compiles an expression with the shared caching compiler
func Compile(expression string) (Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the vehicles matching expression, in their original order. An empty
// expression matches everything.
func Apply(vehicles []schema.VehicleResult, expression string) ([]schema.VehicleResult, error) {
	if strings.TrimSpace(expression) == "" {
		return vehicles, nil
	}

	f, err := Compile(expression)
	if err != nil {
		return nil, err
	}

	matches := make([]schema.VehicleResult, 0, len(vehicles))
	for _, v := range vehicles {
		if f.Match(v) {
			matches = append(matches, v)
		}
	}
	return matches, nil
}
