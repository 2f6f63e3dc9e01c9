package forma

// Evaluator is the compiled shape of a template: a pure function from a
// domain value to the rendered string.
type Evaluator[T any] func(T) string

const syntaxErrorMessage = "Syntax error"

func syntaxErrorEvaluator[T any](T) string {
	return syntaxErrorMessage
}

type attributeGetter[T any] func(T) string
type boolGetter[T any] func(T) bool
type childValidator[T any] func(Node) (Evaluator[T], []Error)

// Definition is the schema binding template names to typed accessors over
// a value of type T: which attributes, booleans, and list-typed children a
// template may reference. Names are unique within a category, but may
// collide across categories — the AST node shape chooses which category
// applies.
type Definition[T any] struct {
	attributes map[string]attributeGetter[T]
	bools      map[string]boolGetter[T]
	children   map[string]childValidator[T]
}

// NewDefinition returns an empty schema for T.
func NewDefinition[T any]() *Definition[T] {
	return &Definition[T]{
		attributes: map[string]attributeGetter[T]{},
		bools:      map[string]boolGetter[T]{},
		children:   map[string]childValidator[T]{},
	}
}

// AddVar registers a scalar attribute getter under name.
func (d *Definition[T]) AddVar(name string, getter func(T) string) *Definition[T] {
	d.attributes[name] = getter
	return d
}

// AddBool registers a boolean predicate under name.
func (d *Definition[T]) AddBool(name string, getter func(T) bool) *Definition[T] {
	d.bools[name] = getter
	return d
}

// AddList registers a list-typed child collection under name: childSelector
// extracts the ordered child values from a T, and childDef is the schema
// the iterate body is validated against. Concatenation at evaluation time
// runs left-to-right over whatever childSelector returns.
func AddList[T any, C any](d *Definition[T], name string, childSelector func(T) []C, childDef *Definition[C]) *Definition[T] {
	d.children[name] = func(body Node) (Evaluator[T], []Error) {
		childEval, errs := childDef.Validate(body)
		if len(errs) > 0 {
			return syntaxErrorEvaluator[T], errs
		}
		return func(parent T) string {
			var out string
			for _, c := range childSelector(parent) {
				out += childEval(c)
			}
			return out
		}, nil
	}
	return d
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
