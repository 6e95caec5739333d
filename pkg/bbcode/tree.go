package bbcode

import "strings"

// Node is a tree node: *Root, *Tag or *Text.
type Node interface {
	node()
}

// Root holds the top level of a document.
type Root struct {
	Children []Node
}

// Tag is a tag node and its children.
type Tag struct {
	Ref      TagRef
	Children []Node
}

// Text is a literal text leaf.
type Text struct {
	Value string
}

func (*Root) node() {}
func (*Tag) node()  {}
func (*Text) node() {}

// treeBuilder keeps the chain of open tags; the last one receives children.
type treeBuilder struct {
	root    *Root
	open    []*Tag
	pending strings.Builder
}

// BuildTree folds a sanitized token sequence into a tree. Tags left open at
// the end are closed implicitly. Adjacent text in one scope becomes a single
// leaf.
//
// The input is expected to come from Sanitize. For other input a close
// token ends the innermost open tag whatever its name, a close token at the
// top level is ignored, and newline or garbage tokens count as text.
func BuildTree(tokens []Token) *Root {
	b := &treeBuilder{root: &Root{}}

	for _, tok := range tokens {
		switch tok.Kind {
		case KindText, KindNewline, KindGarbage:
			b.pending.WriteString(tok.Value)
		case KindOpenTag:
			b.flush()
			tag := &Tag{Ref: tok.Tag}
			b.append(tag)
			b.open = append(b.open, tag)
		case KindCloseTag:
			b.flush()
			if len(b.open) > 0 {
				b.open = b.open[:len(b.open)-1]
			}
		}
	}
	b.flush()

	return b.root
}

func (b *treeBuilder) append(n Node) {
	if len(b.open) == 0 {
		b.root.Children = append(b.root.Children, n)
		return
	}
	top := b.open[len(b.open)-1]
	top.Children = append(top.Children, n)
}

func (b *treeBuilder) flush() {
	if b.pending.Len() == 0 {
		return
	}
	b.append(&Text{Value: b.pending.String()})
	b.pending.Reset()
}
