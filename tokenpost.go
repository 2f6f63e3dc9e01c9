package forma

// postProcess runs the three ordered token-stream transforms required
// before parsing: trim-marker application, then empty-block elision, then
// sigil-to-keyword promotion. The order is load-bearing — trimming can
// create the adjacencies elision looks for, and elision can create the
// adjacencies promotion looks for — so callers always go through this one
// entry point rather than invoking the passes individually.
func postProcess(tokens []Token) []Token {
	return promoteSigils(elideEmptyBlocks(trimMarkers(tokens)))
}

// trimMarkers consumes BeginCodeTrim/EndCodeTrim pairs against their
// neighboring Text tokens: a BeginCodeTrim strips trailing whitespace from
// the preceding Text and becomes a plain BeginCode; a Text following an
// EndCodeTrim has its leading whitespace stripped and the marker becomes a
// plain EndCode.
func trimMarkers(tokens []Token) []Token {
	// Token-at-a-time state update: a BeginCodeTrim emits the pending
	// token trimmed when it is Text (the trim target) and unchanged
	// otherwise, e.g. the EndCode of "{{a}}{{- b}}", where no Text token
	// sits between the two directives.
	var out []Token
	var last *Token
	haveLast := false

	for _, tok := range tokens {
		switch tok.Type {
		case BeginCodeTrim:
			if haveLast && last.Type == Text {
				out = append(out, last.withValue(TrimEnd(last.Value)))
			} else if haveLast {
				out = append(out, *last)
			}
			t := tok.withType(BeginCode)
			last = &t
			haveLast = true

		case Text:
			if haveLast && last.Type == EndCodeTrim {
				out = append(out, last.withType(EndCode))
				t := tok.withValue(TrimStart(tok.Value))
				last = &t
				haveLast = true
				continue
			}
			if haveLast {
				out = append(out, *last)
			}
			t := tok
			last = &t
			haveLast = true

		default:
			if haveLast {
				out = append(out, *last)
			}
			t := tok
			last = &t
			haveLast = true
		}
	}
	if haveLast {
		out = append(out, *last)
	}

	return out
}

// elideEmptyBlocks drops adjacent BeginCode/EndCode pairs with nothing
// between them, so that "{{}}" anywhere contributes nothing to the parse.
func elideEmptyBlocks(tokens []Token) []Token {
	var out []Token
	var last *Token

	for _, tok := range tokens {
		if last != nil && last.Type == BeginCode && tok.Type == EndCode {
			last = nil
			continue
		}
		if last != nil {
			out = append(out, *last)
		}
		t := tok
		last = &t
	}
	if last != nil {
		out = append(out, *last)
	}

	return out
}

// promoteSigils rewrites the single-character sigils that immediately
// follow a BeginCode into their keyword equivalents: "/" becomes
// KeywordEnd (swallowing a following Ident, so both "{{/songs}}" and
// "{{end}}" close a block with no name left over), "#" becomes
// KeywordRange, "?" becomes KeywordIf.
func promoteSigils(tokens []Token) []Token {
	var out []Token
	var last *Token
	eatIdent := false

	for _, tok := range tokens {
		if tok.Type == Ident && eatIdent {
			eatIdent = false
			continue
		}

		afterBegin := last != nil && last.Type == BeginCode
		switch {
		case tok.Type == Slash && afterBegin:
			out = append(out, *last)
			t := tok.withType(KeywordEnd)
			last = &t
			eatIdent = true
		case tok.Type == Hash && afterBegin:
			out = append(out, *last)
			t := tok.withType(KeywordRange)
			last = &t
		case tok.Type == QuestionMark && afterBegin:
			out = append(out, *last)
			t := tok.withType(KeywordIf)
			last = &t
		default:
			if last != nil {
				out = append(out, *last)
			}
			t := tok
			last = &t
		}
	}
	if last != nil {
		out = append(out, *last)
	}

	return out
}
