package bbcode

// Sanitized is the outcome of Sanitize.
type Sanitized struct {
	// Tokens is well nested: every close token matches the innermost open
	// tag. Tags listed in Unclosed are left open at the end.
	Tokens []Token
	// Sane is false when any repair was necessary.
	Sane bool
	// Unclosed holds the tags still open at end of input, innermost first.
	Unclosed []TagRef

	repairs int
}

// Repairs counts the repair events: dropped orphan closes, crossing
// closures and tags left open at end of input.
func (s Sanitized) Repairs() int {
	return s.repairs + len(s.Unclosed)
}

// sanitizer carries the fold state. The open stack grows at the end of the
// slice, so the innermost tag is stack[len(stack)-1].
type sanitizer struct {
	lineTags TagSet
	stack    []TagRef
	out      []Token
	sane     bool
	repairs  int
}

// Sanitize repairs tag nesting so the result can be folded into a tree.
//
// A close tag that matches no open tag is dropped. A close tag that matches
// a tag below the top of the stack closes every tag above it first
// (crossing closure); those tags are not reopened afterwards. A newline
// closes the innermost open line tag the same way and is kept as text
// after the synthesized closes. Newlines outside line tags are plain text.
func Sanitize(tokens []Token, lineTags TagSet) Sanitized {
	s := &sanitizer{
		lineTags: lineTags,
		out:      make([]Token, 0, len(tokens)),
		sane:     true,
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case KindText, KindGarbage:
			s.emit(Token{Kind: KindText, Value: tok.Value})
		case KindOpenTag:
			s.stack = append(s.stack, tok.Tag)
			s.emit(tok)
		case KindCloseTag:
			s.closeTag(tok)
		case KindNewline:
			s.newline(tok)
		}
	}

	unclosed := make([]TagRef, 0, len(s.stack))
	for i := len(s.stack) - 1; i >= 0; i-- {
		unclosed = append(unclosed, s.stack[i])
	}

	return Sanitized{
		Tokens:   s.out,
		Sane:     s.sane && len(s.stack) == 0,
		Unclosed: unclosed,
		repairs:  s.repairs,
	}
}

func (s *sanitizer) emit(tok Token) {
	s.out = append(s.out, tok)
}

func (s *sanitizer) closeTag(tok Token) {
	depth := s.find(func(ref TagRef) bool { return ref.Name == tok.Value })
	switch {
	case depth < 0:
		s.sane = false
		s.repairs++
	case depth == 0:
		s.emit(tok)
		s.pop(1)
	default:
		s.closeThrough(depth)
	}
}

func (s *sanitizer) newline(tok Token) {
	depth := s.find(func(ref TagRef) bool { return s.lineTags.Has(ref.Name) })
	switch {
	case depth == 0:
		s.emit(Token{Kind: KindCloseTag, Value: s.stack[len(s.stack)-1].Name})
		s.pop(1)
	case depth > 0:
		s.closeThrough(depth)
	}
	s.emit(Token{Kind: KindText, Value: tok.Value})
}

// closeThrough emits close tokens for the top depth+1 stack entries,
// innermost first, and marks the input unsane.
func (s *sanitizer) closeThrough(depth int) {
	for i := 0; i <= depth; i++ {
		s.emit(Token{Kind: KindCloseTag, Value: s.stack[len(s.stack)-1-i].Name})
	}
	s.pop(depth + 1)
	s.sane = false
	s.repairs++
}

func (s *sanitizer) pop(n int) {
	s.stack = s.stack[:len(s.stack)-n]
}

// find returns the distance from the top of the stack to the innermost
// entry accepted by match, or -1.
func (s *sanitizer) find(match func(TagRef) bool) int {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if match(s.stack[i]) {
			return len(s.stack) - 1 - i
		}
	}
	return -1
}
