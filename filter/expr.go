package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/safetydash/schema"
)

// exprFilter implements Filter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// CompilerOption configures an expr compiler
type CompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	cache *lruCache
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) Compiler {
	c := &exprCompiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression into an executable filter. The expression is type
// checked against a vehicle environment, so unknown names fail here rather than at
// evaluation time.
func (c *exprCompiler) Compile(expression string) (Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(createRuntimeEnvironment(schema.VehicleResult{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Evaluate runs the program against a vehicle
func (f *exprFilter) Evaluate(vehicle schema.VehicleResult) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(vehicle))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Vehicle:    vehicle.DisplayName(),
			Err:        err,
		}
	}
	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Match evaluates the filter and treats evaluation errors as a non-match
func (f *exprFilter) Match(vehicle schema.VehicleResult) bool {
	ok, err := f.Evaluate(vehicle)
	return err == nil && ok
}

// Expression returns the original filter expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions returns the functions every expression may call. Names avoid the
// expr operators contains, startsWith and endsWith.
func createHelperFunctions() map[string]any {
	return map[string]any{
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefixFold": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffixFold": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"equalFold": strings.EqualFold,
	}
}

// createRuntimeEnvironment flattens a vehicle into expression variables
func createRuntimeEnvironment(v schema.VehicleResult) map[string]any {
	env := map[string]any{
		"Vehicle":        v,
		"year":           v.ModelYear,
		"make":           v.Make,
		"model":          v.VehicleModel,
		"trimName":       deref(v.Trim),
		"series":         deref(v.Series),
		"vehicleClass":   deref(v.Class),
		"manufacturer":   v.Manufacturer,
		"recalls":        v.RecallsCount,
		"complaints":     v.ComplaintsCount,
		"investigations": v.InvestigationsCount,
		"communications": v.ManufacturerCommunicationsCount,
		"ncapRated":      v.NcapRated,
		"parkIt":         v.ParkIt,
		"parkOutside":    v.ParkOutSide,
		"overTheAir":     v.OverTheAirUpdate,
		"active":         v.Active,
	}
	maps.Copy(env, createHelperFunctions())
	return env
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
