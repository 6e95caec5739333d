package bbcode

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// lexer tries to read one token from the head of s and reports how many
// bytes it consumed. A lexer that does not match returns ok == false.
type lexer func(s string) (tok Token, n int, ok bool)

// lexers are tried in order; the first match wins.
var lexers = []lexer{
	lexCloseTag,
	lexOpenTag,
	lexText,
	lexNewline,
	lexGarbage,
}

// Tokenize splits input into a flat sequence of tokens. Every byte of the
// input ends up in some token, so the only possible error is ErrNoProgress,
// which indicates a defect in the grammar rather than bad input.
func Tokenize(input string) ([]Token, error) {
	tokens := make([]Token, 0, 8)
	pos := 0
	for pos < len(input) {
		tok, n, ok := nextToken(input[pos:])
		if !ok || n <= 0 {
			return nil, fmt.Errorf("%w: offset %d", ErrNoProgress, pos)
		}
		tokens = append(tokens, tok)
		pos += n
	}
	return tokens, nil
}

func nextToken(s string) (Token, int, bool) {
	for _, lex := range lexers {
		if tok, n, ok := lex(s); ok {
			return tok, n, true
		}
	}
	return Token{}, 0, false
}

// [/name]
func lexCloseTag(s string) (Token, int, bool) {
	if len(s) < 2 || s[0] != '[' || s[1] != '/' {
		return Token{}, 0, false
	}
	n := nameLen(s[2:])
	if n == 0 || 2+n >= len(s) || s[2+n] != ']' {
		return Token{}, 0, false
	}
	return Token{Kind: KindCloseTag, Value: s[2 : 2+n]}, 3 + n, true
}

// [name k=v ...], [name=v] or [name]
func lexOpenTag(s string) (Token, int, bool) {
	if len(s) == 0 || s[0] != '[' {
		return Token{}, 0, false
	}
	body := s[1:]

	ref, n, ok := complexTag(body)
	if !ok {
		ref, n, ok = assignmentTag(body)
	}
	if !ok {
		ref, n, ok = simpleTag(body)
	}
	if !ok || n >= len(body) || body[n] != ']' {
		return Token{}, 0, false
	}
	return Token{Kind: KindOpenTag, Tag: ref}, n + 2, true
}

func complexTag(s string) (TagRef, int, bool) {
	name := nameLen(s)
	if name == 0 {
		return TagRef{}, 0, false
	}
	ws := spaceLen(s[name:])
	if ws == 0 {
		return TagRef{}, 0, false
	}
	pos := name + ws

	attrs := Named()
	for {
		key, value, n, ok := assignment(s[pos:])
		if !ok {
			break
		}
		attrs.set(key, value)
		pos += n
		pos += spaceLen(s[pos:])
	}
	return TagRef{Name: s[:name], Attrs: attrs}, pos, true
}

func assignmentTag(s string) (TagRef, int, bool) {
	key, value, n, ok := assignment(s)
	if !ok {
		return TagRef{}, 0, false
	}
	return TagRef{Name: key, Attrs: SingleValue(value)}, n, true
}

func simpleTag(s string) (TagRef, int, bool) {
	n := nameLen(s)
	if n == 0 {
		return TagRef{}, 0, false
	}
	return TagRef{Name: s[:n]}, n, true
}

// assignment reads name=value.
func assignment(s string) (key, value string, n int, ok bool) {
	k := nameLen(s)
	if k == 0 || k >= len(s) || s[k] != '=' {
		return "", "", 0, false
	}
	v := nameLen(s[k+1:])
	if v == 0 {
		return "", "", 0, false
	}
	return s[:k], s[k+1 : k+1+v], k + 1 + v, true
}

func lexText(s string) (Token, int, bool) {
	n := 0
	for n < len(s) && s[n] != '[' && s[n] != '\n' {
		n++
	}
	if n == 0 {
		return Token{}, 0, false
	}
	return Token{Kind: KindText, Value: s[:n]}, n, true
}

func lexNewline(s string) (Token, int, bool) {
	if len(s) == 0 || s[0] != '\n' {
		return Token{}, 0, false
	}
	return Token{Kind: KindNewline, Value: "\n"}, 1, true
}

func lexGarbage(s string) (Token, int, bool) {
	if len(s) == 0 {
		return Token{}, 0, false
	}
	switch s[0] {
	case '[', ']', ' ':
		return Token{Kind: KindGarbage, Value: s[:1]}, 1, true
	}
	return Token{}, 0, false
}

// nameLen counts the leading bytes that may form a tag name, attribute key
// or attribute value: anything except ']', '=' and space.
func nameLen(s string) int {
	n := 0
	for n < len(s) {
		switch s[n] {
		case ']', '=', ' ':
			return n
		}
		n++
	}
	return n
}

func spaceLen(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}
