package bbcode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bbfy/pkg/bbcode"
)

func openTag(name string, attrs ...bbcode.Attributes) bbcode.Token {
	ref := bbcode.TagRef{Name: name}
	if len(attrs) > 0 {
		ref.Attrs = attrs[0]
	}
	return bbcode.Token{Kind: bbcode.KindOpenTag, Tag: ref}
}

func closeTag(name string) bbcode.Token {
	return bbcode.Token{Kind: bbcode.KindCloseTag, Value: name}
}

func text(v string) bbcode.Token {
	return bbcode.Token{Kind: bbcode.KindText, Value: v}
}

func newline() bbcode.Token {
	return bbcode.Token{Kind: bbcode.KindNewline, Value: "\n"}
}

func garbage(v string) bbcode.Token {
	return bbcode.Token{Kind: bbcode.KindGarbage, Value: v}
}

func pair(k, v string) bbcode.Attribute {
	return bbcode.Attribute{Key: k, Value: v}
}

func tag(name string, children ...bbcode.Node) *bbcode.Tag {
	return &bbcode.Tag{Ref: bbcode.TagRef{Name: name}, Children: children}
}

func leaf(v string) *bbcode.Text {
	return &bbcode.Text{Value: v}
}

func root(children ...bbcode.Node) *bbcode.Root {
	return &bbcode.Root{Children: children}
}

// requireWellNested fails when a close token does not match the innermost
// open tag.
func requireWellNested(t *testing.T, tokens []bbcode.Token) {
	t.Helper()
	var stack []string
	for i, tok := range tokens {
		switch tok.Kind {
		case bbcode.KindOpenTag:
			stack = append(stack, tok.Tag.Name)
		case bbcode.KindCloseTag:
			require.NotEmpty(t, stack, "close token %d (%q) without open tag", i, tok.Value)
			require.Equal(t, stack[len(stack)-1], tok.Value, "close token %d crosses open tags", i)
			stack = stack[:len(stack)-1]
		case bbcode.KindNewline, bbcode.KindGarbage:
			require.Failf(t, "unexpected token kind", "token %d has kind %s", i, tok.Kind)
		}
	}
}
