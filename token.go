package forma

// TokenType classifies a Token produced by the scanner.
type TokenType int

const (
	Text TokenType = iota
	BeginCode
	EndCode
	BeginCodeTrim
	EndCodeTrim
	Ident
	Dot
	Comma
	Pipe
	LeftParen
	RightParen
	Hash
	Slash
	QuestionMark
	Eof
	KeywordIf
	KeywordRange
	KeywordEnd
	KeywordInclude
)

var tokenTypeNames = map[TokenType]string{
	Text:           "Text",
	BeginCode:      "BeginCode",
	EndCode:        "EndCode",
	BeginCodeTrim:  "BeginCodeTrim",
	EndCodeTrim:    "EndCodeTrim",
	Ident:          "Ident",
	Dot:            "Dot",
	Comma:          "Comma",
	Pipe:           "Pipe",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	Hash:           "Hash",
	Slash:          "Slash",
	QuestionMark:   "QuestionMark",
	Eof:            "Eof",
	KeywordIf:      "KeywordIf",
	KeywordRange:   "KeywordRange",
	KeywordEnd:     "KeywordEnd",
	KeywordInclude: "KeywordInclude",
}

// String renders the token type's name, or "<???>" if unrecognized.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "<???>"
}

var keywords = map[string]TokenType{
	"if":      KeywordIf,
	"range":   KeywordRange,
	"end":     KeywordEnd,
	"include": KeywordInclude,
}

// Token is a single lexical element: its type, the exact source slice it
// came from (Lexeme), where it starts (Location), and its semantic payload
// (Value). For most token types Value equals Lexeme; for string literals
// Value is the content without surrounding quotes.
type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
	Value    string
}

// withType returns a copy of the token with a different Type. Used by
// token post-processing to rewrite BeginCodeTrim/EndCodeTrim into their
// plain counterparts once their trim effect has been applied.
func (t Token) withType(tt TokenType) Token {
	t.Type = tt
	return t
}

// withValue returns a copy of the token with a different Value. Used by
// trim-marker application to rewrite a Text token's trimmed content.
func (t Token) withValue(v string) Token {
	t.Value = v
	return t
}
