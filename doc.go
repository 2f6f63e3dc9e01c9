// Package forma is a small text-template engine: a two-stage pipeline
// that turns a template source file plus a typed schema (Definition[T])
// into a compiled Evaluator[T] — a pure function from a domain value to
// an output string.
//
// Current caveats
//   - Concurrency: an Evaluator returned by Build is re-entrant and safe
//     for concurrent use as long as the getters/predicates/selectors it
//     closes over are themselves safe and the domain value isn't mutated
//     concurrently during evaluation.
//   - Includes are not cached: including the same file twice costs two
//     reads against the Vfs.
//
// A tiny example:
//
//	def := forma.NewDefinition[Song]().
//		AddVar("artist", func(s Song) string { return s.Artist }).
//		AddVar("title", func(s Song) string { return s.Title })
//
//	eval, errs := forma.Build("song.txt", vfs, forma.DefaultFunctions(), includeDir, def)
//	if len(errs) > 0 {
//		// errs is a []forma.Error; eval is still callable and returns a stub.
//	}
//	fmt.Println(eval(mySong))
package forma
