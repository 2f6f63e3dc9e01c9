package forma

import "strconv"

// DefaultFunctions returns the engine's built-in pipeline functions:
// capitalize, lower, upper, title, ltrim, rtrim, trim, zfill, replace,
// substr. Callers may extend or override this map freely before passing
// it to Parse/Build.
func DefaultFunctions() FuncRegistry {
	return FuncRegistry{
		"capitalize": noArguments(Capitalize),
		"lower":      noArguments(ToLower),
		"upper":      noArguments(ToUpper),
		"title":      noArguments(ToTitleCase),

		"rtrim": optionalStringArgument(TrimEnd, DefaultSpaceChars),
		"ltrim": optionalStringArgument(TrimStart, DefaultSpaceChars),
		"trim":  optionalStringArgument(Trim, DefaultSpaceChars),
		"zfill": optionalIntArgument(func(s string, n int) string { return PadLeft(s, n, '0') }, 3),

		"replace": stringStringArgument(Replace),
		"substr":  intIntArgument(Substring),
	}
}

func syntaxErrorResult(errs ...Error) FuncGeneratorResult {
	return FuncGeneratorResult{Func: syntaxErrorFunc, Errors: errs}
}

// noArguments builds a FuncGenerator for a filter that takes no arguments,
// rejecting any call that supplies one.
func noArguments(f func(string) string) FuncGenerator {
	return func(call Location, args []FuncArgument) FuncGeneratorResult {
		if len(args) != 0 {
			return syntaxErrorResult(Error{Location: call, Message: "Expected zero arguments"})
		}
		return FuncGeneratorResult{Func: f}
	}
}

// optionalStringArgument builds a FuncGenerator for a filter that takes
// zero or one string argument, falling back to missing when omitted.
func optionalStringArgument(f func(string, ...string) string, missing string) FuncGenerator {
	return func(call Location, args []FuncArgument) FuncGeneratorResult {
		switch len(args) {
		case 0:
			return FuncGeneratorResult{Func: func(arg string) string { return f(arg, missing) }}
		case 1:
			chars := args[0].Argument
			return FuncGeneratorResult{Func: func(arg string) string { return f(arg, chars) }}
		default:
			return syntaxErrorResult(Error{Location: call, Message: "Expected zero or one string argument"})
		}
	}
}

// optionalIntArgument builds a FuncGenerator for a filter that takes zero
// or one integer argument, falling back to missing when omitted.
func optionalIntArgument(f func(string, int) string, missing int) FuncGenerator {
	return func(call Location, args []FuncArgument) FuncGeneratorResult {
		switch len(args) {
		case 0:
			return FuncGeneratorResult{Func: func(arg string) string { return f(arg, missing) }}
		case 1:
			n, err := strconv.Atoi(args[0].Argument)
			if err != nil {
				return syntaxErrorResult(
					Error{Location: call, Message: "This function takes zero or one int argument"},
					Error{Location: args[0].Location, Message: "this is not a int"},
				)
			}
			return FuncGeneratorResult{Func: func(arg string) string { return f(arg, n) }}
		default:
			return syntaxErrorResult(Error{Location: call, Message: "Expected zero or one int argument"})
		}
	}
}

// stringStringArgument builds a FuncGenerator for a filter that takes
// exactly two string arguments (e.g. replace(lhs, rhs)).
func stringStringArgument(f func(string, string, string) string) FuncGenerator {
	return func(call Location, args []FuncArgument) FuncGeneratorResult {
		if len(args) != 2 {
			return syntaxErrorResult(Error{Location: call, Message: "Expected two arguments"})
		}
		lhs, rhs := args[0].Argument, args[1].Argument
		return FuncGeneratorResult{Func: func(arg string) string { return f(arg, lhs, rhs) }}
	}
}

// intIntArgument builds a FuncGenerator for a filter that takes exactly
// two integer arguments (e.g. substr(start, count)).
func intIntArgument(f func(string, int, int) string) FuncGenerator {
	return func(call Location, args []FuncArgument) FuncGeneratorResult {
		if len(args) != 2 {
			return syntaxErrorResult(Error{Location: call, Message: "Expected two arguments"})
		}
		lhs, err := strconv.Atoi(args[0].Argument)
		if err != nil {
			return syntaxErrorResult(Error{Location: args[0].Location, Message: "Not a integer"})
		}
		rhs, err := strconv.Atoi(args[1].Argument)
		if err != nil {
			return syntaxErrorResult(Error{Location: args[1].Location, Message: "Not a integer"})
		}
		return FuncGeneratorResult{Func: func(arg string) string { return f(arg, lhs, rhs) }}
	}
}
