package bbcode

import "strings"

// Render converts a tree into a string. Each tag's children are rendered
// first, left to right, and the concatenated result is handed to the rule
// registered for the tag name, or to unsupported when there is none.
func Render(root *Root, rules RuleSet, unsupported Rule) string {
	return RenderWith(root, rules, unsupported, nil)
}

// RenderWith is Render with a filter applied to every text leaf before it
// reaches a rule. A nil escape leaves text untouched.
func RenderWith(root *Root, rules RuleSet, unsupported Rule, escape func(string) string) string {
	if root == nil {
		return ""
	}
	if unsupported == nil {
		unsupported = Passthrough
	}
	r := renderer{rules: rules, unsupported: unsupported, escape: escape}
	var b strings.Builder
	r.children(&b, root.Children)
	return b.String()
}

type renderer struct {
	rules       RuleSet
	unsupported Rule
	escape      func(string) string
}

func (r renderer) children(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		r.node(b, n)
	}
}

func (r renderer) node(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Text:
		if r.escape != nil {
			b.WriteString(r.escape(n.Value))
		} else {
			b.WriteString(n.Value)
		}
	case *Tag:
		var inner strings.Builder
		r.children(&inner, n.Children)
		rule, ok := r.rules[n.Ref.Name]
		if !ok || rule == nil {
			rule = r.unsupported
		}
		b.WriteString(rule.Render(inner.String(), n.Ref.Name, n.Ref.Attrs))
	case *Root:
		r.children(b, n.Children)
	}
}
