package filter

import "github.com/s0up4200/safetydash/schema"

// Filter matches vehicles against a compiled expression
type Filter interface {
	// Match reports whether the vehicle satisfies the expression
	Match(vehicle schema.VehicleResult) bool

	// Evaluate is Match with the evaluation error exposed
	Evaluate(vehicle schema.VehicleResult) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (Filter, error)
}
