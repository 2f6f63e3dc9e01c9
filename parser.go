package forma

import "fmt"

// Vfs is the minimal read-only virtual filesystem the parser needs to
// resolve include directives. The engine never writes through it and
// never caches reads: including the same file twice costs two reads.
type Vfs interface {
	ReadAllText(path string) (string, error)
	Exists(path string) bool
	GetExtension(path string) string
}

// IncludeDir maps a logical include name (with or without extension) to
// the path a Vfs should read.
type IncludeDir interface {
	GetFile(nameAndExtension string) string
}

// parseError unwinds out of a malformed directive and into synchronize();
// it never crosses the package boundary. The diagnostic itself is already
// appended to parser.errors by the time this is panicked.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

type parser struct {
	tokens []Token

	functions        FuncRegistry
	includeDir       IncludeDir
	defaultExtension string
	vfs              Vfs
	visited          map[string]bool

	current int
	errors  []Error
}

// Parse converts a scanned token stream into an AST. Errors are
// accumulated rather than raised: a malformed directive produces exactly
// one diagnostic and parsing resumes at the next safe point (see
// synchronize), so the caller always gets a complete diagnostic list in a
// single pass.
func Parse(tokens []Token, functions FuncRegistry, includeDir IncludeDir, defaultExtension string, vfs Vfs) (Node, []Error) {
	return parseWithVisited(tokens, functions, includeDir, defaultExtension, vfs, map[string]bool{})
}

func parseWithVisited(tokens []Token, functions FuncRegistry, includeDir IncludeDir, defaultExtension string, vfs Vfs, visited map[string]bool) (Node, []Error) {
	p := &parser{
		tokens:           postProcess(tokens),
		functions:        functions,
		includeDir:       includeDir,
		defaultExtension: defaultExtension,
		vfs:              vfs,
		visited:          visited,
	}
	return p.parse()
}

func (p *parser) parse() (Node, []Error) {
	root := p.parseGroup()
	if !p.isAtEnd() {
		p.reportError(p.peek().Location, p.expectedMessage("EOF"))
	}

	if len(p.errors) == 0 {
		return root, nil
	}
	return TextNode{Value: "Parsing failed", Location: UnknownLocation()}, p.errors
}

// parseGroup parses a run of text/code nodes, stopping just before a
// BeginCode KeywordEnd pair (the caller consumes that closer itself).
func (p *parser) parseGroup() Node {
	start := p.peek().Location
	var nodes []Node

	for !p.isAtEnd() && !(p.peek().Type == BeginCode && p.peekNextType() == KeywordEnd) {
		p.parseNodeRecovering(&nodes)
	}

	return GroupNode{Children: nodes, Location: start}
}

// parseNodeRecovering calls parseNode and, if it panics with a parseError
// (the diagnostic is already recorded), synchronizes and continues. Any
// other panic propagates.
func (p *parser) parseNodeRecovering(nodes *[]Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()
	p.parseNode(nodes)
}

func (p *parser) reportError(loc Location, message string) parseError {
	p.errors = append(p.errors, Error{Location: loc, Message: message})
	return parseError{}
}

func (p *parser) match(tt TokenType) bool {
	if !p.check(tt) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == Eof
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) peekNextType() TokenType {
	if p.current+1 >= len(p.tokens) {
		return Eof
	}
	return p.tokens[p.current+1].Type
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

// synchronize recovers from a malformed directive: it advances past the
// next EndCode, or up to (not past) the next Text token, whichever comes
// first. This bounds a malformed directive to exactly one diagnostic and
// guarantees later directives still get parsed.
func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == EndCode {
			return
		}
		if p.peek().Type == Text {
			return
		}
		p.advance()
	}
}

func tokenToMessage(tok Token) string {
	if tok.Type == Text {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s: %s", tok.Type, tok.Lexeme)
}

func (p *parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	panic(p.reportError(p.peek().Location, message))
}

func (p *parser) parseFunctionArg() FuncArgument {
	if p.peek().Type != Ident {
		panic(p.reportError(p.peek().Location, p.expectedMessage("identifier")))
	}
	arg := p.advance()
	return FuncArgument{Location: arg.Location, Argument: arg.Value}
}

func (p *parser) extractAttributeName() string {
	ident := p.consume(Ident, p.expectedMessage("IDENT"))
	return ident.Value
}

func (p *parser) expectedMessage(what string) string {
	return fmt.Sprintf("Expected %s but found %s", what, tokenToMessage(p.peek()))
}

func (p *parser) parseNode(nodes *[]Node) {
	switch p.peek().Type {
	case BeginCode:
		start := p.peek().Location
		p.advance()

		switch {
		case p.match(KeywordRange):
			name := p.extractAttributeName()
			p.consume(EndCode, p.expectedMessage("}}"))

			body := p.parseGroup()
			p.consume(BeginCode, p.expectedMessage("{{"))
			p.consume(KeywordEnd, p.expectedMessage("keyword end"))
			p.consume(EndCode, p.expectedMessage("}}"))

			*nodes = append(*nodes, IterateNode{Name: name, Body: body, Location: start})

		case p.match(KeywordIf):
			name := p.extractAttributeName()
			p.consume(EndCode, p.expectedMessage("}}"))

			body := p.parseGroup()
			p.consume(BeginCode, p.expectedMessage("{{"))
			p.consume(KeywordEnd, p.expectedMessage("keyword end"))
			p.consume(EndCode, p.expectedMessage("}}"))

			*nodes = append(*nodes, IfNode{Name: name, Body: body, Location: start})

		case p.match(KeywordInclude):
			p.parseInclude(nodes, start)

		default:
			p.parseAttributeToEnd(nodes)
		}

	case Text:
		text := p.advance()
		*nodes = append(*nodes, TextNode{Value: text.Value, Location: text.Location})

	default:
		panic(p.reportError(p.peek().Location, fmt.Sprintf("Unexpected token %s", tokenToMessage(p.peek()))))
	}
}

func (p *parser) parseInclude(nodes *[]Node, start Location) {
	name := p.consume(Ident, p.expectedMessage("IDENT"))
	includeLocation := p.peek().Location
	p.consume(EndCode, p.expectedMessage("}}"))

	firstFile := p.includeDir.GetFile(name.Value)
	file := firstFile
	secondFile := firstFile
	if !p.vfs.Exists(file) {
		secondFile = p.includeDir.GetFile(name.Value + p.defaultExtension)
		file = secondFile
	}

	if !p.vfs.Exists(file) {
		p.reportError(includeLocation, fmt.Sprintf("Unable to open file: tried %s and %s", firstFile, secondFile))
		return
	}

	if p.visited[file] {
		p.reportError(includeLocation, fmt.Sprintf("Include cycle detected: %s", file))
		return
	}

	source, err := p.vfs.ReadAllText(file)
	if err != nil {
		p.reportError(includeLocation, fmt.Sprintf("Unable to read file: %s", file))
		return
	}

	scannerTokens, lexErrors := Scan(file, source)
	if len(lexErrors) > 0 {
		p.reportError(includeLocation, "included from here...")
		for _, e := range lexErrors {
			p.reportError(e.Location, e.Message)
		}
		return
	}

	childVisited := make(map[string]bool, len(p.visited)+1)
	for k, v := range p.visited {
		childVisited[k] = v
	}
	childVisited[file] = true

	node, parseErrors := parseWithVisited(scannerTokens, p.functions, p.includeDir, p.defaultExtension, p.vfs, childVisited)
	if len(parseErrors) > 0 {
		p.reportError(includeLocation, "included from here...")
		for _, e := range parseErrors {
			p.reportError(e.Location, e.Message)
		}
		return
	}

	*nodes = append(*nodes, node)
}

func (p *parser) parseAttributeToEnd(nodes *[]Node) {
	start := p.peek().Location
	var node Node = AttributeNode{Name: p.extractAttributeName(), Location: start}

	for p.peek().Type == Pipe {
		p.advance()
		name := p.consume(Ident, p.expectedMessage("function name"))
		var arguments []FuncArgument

		if p.match(LeftParen) {
			for p.peek().Type != RightParen && !p.isAtEnd() {
				arguments = append(arguments, p.parseFunctionArg())
				if p.peek().Type != RightParen {
					p.consume(Comma, p.expectedMessage("comma for the next function argument"))
				}
			}
			p.consume(RightParen, p.expectedMessage(") to end function"))
		}

		if generator, ok := p.functions[name.Value]; ok {
			result := generator(name.Location, arguments)
			p.errors = append(p.errors, result.Errors...)
			fn := result.Func
			if fn == nil {
				fn = syntaxErrorFunc
			}
			node = FunctionCallNode{Name: name.Value, Func: fn, Arg: node, Location: name.Location}
		} else {
			p.reportError(name.Location, fmt.Sprintf("Unknown function named %s: %s", name.Value, matchStrings(functionNames(p.functions))))
		}
	}

	*nodes = append(*nodes, node)
	p.consume(EndCode, p.expectedMessage("end token"))
}

func functionNames(functions FuncRegistry) []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	return names
}
