package forma

// Build orchestrates scan -> parse -> validate for a single template path:
// the facade described by spec section 4.7. Whatever fails first wins: a
// lexing failure returns a stub evaluator and the lex errors without ever
// reaching the parser, and likewise for a parse failure. Only when both
// stages are clean does validation run, and validation errors (if any)
// come back alongside its own stub evaluator.
func Build[T any](path string, vfs Vfs, functions FuncRegistry, includeDir IncludeDir, definition *Definition[T]) (Evaluator[T], []Error) {
	source, err := vfs.ReadAllText(path)
	if err != nil {
		return func(T) string { return "Lexing failed" }, []Error{{
			Location: Location{File: path, Line: -1, Column: -1},
			Message:  "Unable to read file: " + err.Error(),
		}}
	}

	tokens, lexErrors := Scan(path, source)
	if len(lexErrors) > 0 {
		return func(T) string { return "Lexing failed" }, lexErrors
	}

	root, parseErrors := Parse(tokens, functions, includeDir, vfs.GetExtension(path), vfs)
	if len(parseErrors) > 0 {
		return func(T) string { return "Parsing failed" }, parseErrors
	}

	return definition.Validate(root)
}
