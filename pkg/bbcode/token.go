package bbcode

import "strings"

// Kind classifies a lexical token.
type Kind uint8

// Token kinds. KindNewline is a single "\n"; KindCloseTag carries the tag
// name in Token.Value.
const (
	KindNewline Kind = iota
	KindText
	KindOpenTag
	KindCloseTag
	// KindGarbage is a lone bracket or space that did not start a tag.
	KindGarbage
)

// String returns the lower-case kind name, e.g. "open-tag".
func (k Kind) String() string {
	switch k {
	case KindNewline:
		return "newline"
	case KindText:
		return "text"
	case KindOpenTag:
		return "open-tag"
	case KindCloseTag:
		return "close-tag"
	case KindGarbage:
		return "garbage"
	default:
		return "unknown"
	}
}

// Token is a single lexeme produced by Tokenize.
// Tag is set for KindOpenTag only; every other kind carries its raw
// string in Value, which for KindCloseTag is the tag name.
type Token struct {
	Kind  Kind
	Value string
	Tag   TagRef
}

// TagRef names a tag together with the attributes it was opened with.
type TagRef struct {
	Name  string
	Attrs Attributes
}

// String re-serializes the opening bracket form, e.g. "[img=100x200]".
func (r TagRef) String() string {
	return "[" + r.Name + r.Attrs.String() + "]"
}

// AttrKind tells which form an Attributes value holds.
type AttrKind uint8

const (
	// AttrNone means the tag was written without attributes: [b].
	AttrNone AttrKind = iota
	// AttrSingle is one unnamed value: [color=red].
	AttrSingle
	// AttrNamed is a key=value mapping: [img width=1 height=2].
	AttrNamed
)

// Attribute is a single key=value pair of a complex tag.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is either absent, a single unnamed value ([color=red]) or a
// mapping of unique keys ([img width=1 height=2]). The zero value is absent.
type Attributes struct {
	kind  AttrKind
	value string
	pairs []Attribute
}

// SingleValue returns attributes holding one unnamed value.
func SingleValue(v string) Attributes {
	return Attributes{kind: AttrSingle, value: v}
}

// Named returns a key/value mapping. Keys keep the position of their first
// occurrence; a repeated key overwrites the earlier value.
func Named(pairs ...Attribute) Attributes {
	a := Attributes{kind: AttrNamed, pairs: make([]Attribute, 0, len(pairs))}
	for _, p := range pairs {
		a.set(p.Key, p.Value)
	}
	return a
}

func (a *Attributes) set(key, value string) {
	for i := range a.pairs {
		if a.pairs[i].Key == key {
			a.pairs[i].Value = value
			return
		}
	}
	a.pairs = append(a.pairs, Attribute{Key: key, Value: value})
}

// Kind reports which form the attributes hold.
func (a Attributes) Kind() AttrKind { return a.kind }

// Value returns the single unnamed value.
func (a Attributes) Value() (string, bool) {
	if a.kind != AttrSingle {
		return "", false
	}
	return a.value, true
}

// Get looks up a named attribute.
func (a Attributes) Get(key string) (string, bool) {
	for _, p := range a.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Pairs returns a copy of the named attributes in source order.
func (a Attributes) Pairs() []Attribute {
	if len(a.pairs) == 0 {
		return nil
	}
	out := make([]Attribute, len(a.pairs))
	copy(out, a.pairs)
	return out
}

// Len reports the number of attribute values held.
func (a Attributes) Len() int {
	switch a.kind {
	case AttrSingle:
		return 1
	case AttrNamed:
		return len(a.pairs)
	default:
		return 0
	}
}

// String renders the attributes the way they follow a tag name inside
// brackets: "", "=v" or " k=v k2=v2".
func (a Attributes) String() string {
	switch a.kind {
	case AttrSingle:
		return "=" + a.value
	case AttrNamed:
		var b strings.Builder
		for _, p := range a.pairs {
			b.WriteByte(' ')
			b.WriteString(p.Key)
			b.WriteByte('=')
			b.WriteString(p.Value)
		}
		return b.String()
	default:
		return ""
	}
}

// Equal reports whether both values hold the same form and content.
func (a Attributes) Equal(b Attributes) bool {
	if a.kind != b.kind || a.value != b.value || len(a.pairs) != len(b.pairs) {
		return false
	}
	for i := range a.pairs {
		if a.pairs[i] != b.pairs[i] {
			return false
		}
	}
	return true
}

// TagSet is a set of tag names.
type TagSet map[string]struct{}

// NewTagSet returns a set holding names.
func NewTagSet(names ...string) TagSet {
	s := make(TagSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. A nil set is empty.
func (s TagSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}
