package forma

// Func is a pipeline function bound into the AST at parse time: a pure
// unary string transform.
type Func func(string) string

// FuncArgument is one parenthesized argument to a pipeline call, e.g. the
// "3" in {{ x | zfill(3) }}.
type FuncArgument struct {
	Location Location
	Argument string
}

// FuncGeneratorResult is what a FuncGenerator produces: the bound
// function plus any errors discovered while parsing its arguments. Errors
// don't prevent Func from being installed — it's a stub in that case.
type FuncGeneratorResult struct {
	Func   Func
	Errors []Error
}

// FuncGenerator resolves a pipeline call's arguments (already parsed as
// identifiers/strings/numbers) into a bound Func. It runs at parse time,
// once per call site.
type FuncGenerator func(call Location, arguments []FuncArgument) FuncGeneratorResult

// FuncRegistry maps pipeline function names to their generators. The
// registry is treated as immutable for the duration of a single Parse.
type FuncRegistry map[string]FuncGenerator

func syntaxErrorFunc(_ string) string {
	return "syntax error"
}
