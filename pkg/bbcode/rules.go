package bbcode

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule renders one tag. text is the already rendered content of the tag,
// tag its name and attrs the attributes it was opened with.
type Rule interface {
	Render(text, tag string, attrs Attributes) string
}

// RuleFunc adapts a plain function to Rule.
type RuleFunc func(text, tag string, attrs Attributes) string

// Render calls f(text, tag, attrs).
func (f RuleFunc) Render(text, tag string, attrs Attributes) string {
	return f(text, tag, attrs)
}

// RuleSet maps tag names to rules. Tags without an entry are handed to the
// converter's unsupported rule.
type RuleSet map[string]Rule

// Merge returns a copy of s with every rule of other added, replacing rules
// registered under the same tag name.
func (s RuleSet) Merge(other RuleSet) RuleSet {
	out := make(RuleSet, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// Tags lists the tag names of the set in sorted order.
func (s RuleSet) Tags() []string {
	return slices.Sorted(maps.Keys(s))
}

// Passthrough returns the tag content unchanged, dropping the tag itself.
var Passthrough Rule = RuleFunc(func(text, _ string, _ Attributes) string {
	return text
})

// Wrap surrounds the tag content with fixed prefix and suffix strings.
func Wrap(prefix, suffix string) Rule {
	return RuleFunc(func(text, _ string, _ Attributes) string {
		return prefix + text + suffix
	})
}

// Element wraps the tag content in the HTML element of the given name.
func Element(name string) Rule {
	return Wrap("<"+name+">", "</"+name+">")
}

// Recode writes tags back in bracket form. Line tags get no close tag
// because the newline that ended them follows as text.
func Recode(lineTags TagSet) Rule {
	return RuleFunc(func(text, tag string, attrs Attributes) string {
		open := "[" + tag + attrs.String() + "]"
		if lineTags.Has(tag) {
			return open + text
		}
		return open + text + "[/" + tag + "]"
	})
}

// Strip returns the empty rule set: every tag goes to the unsupported rule.
func Strip() RuleSet {
	return RuleSet{}
}

// HTML returns the default rule set. Tags with attributes that do not pass
// validation render their content without markup; an [img] whose content is
// not a URL renders nothing.
func HTML() RuleSet {
	return RuleSet{
		"b":     Element("b"),
		"i":     Element("i"),
		"u":     Element("u"),
		"s":     Element("s"),
		"color": RuleFunc(colorRule),
		"font":  RuleFunc(fontRule),
		"size":  RuleFunc(sizeRule),
		"url":   RuleFunc(urlRule),
		"img":   RuleFunc(imgRule),
	}
}

var presets = map[string]func() RuleSet{
	"html":  HTML,
	"strip": Strip,
}

// Preset returns a fresh copy of a named rule set ("html" or "strip").
func Preset(name string) (RuleSet, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleSet, name)
	}
	return build(), nil
}

func span(style, text string) string {
	return `<span style="` + style + `">` + text + `</span>`
}

func colorRule(text, _ string, attrs Attributes) string {
	color, ok := attrs.Value()
	if !ok || !colorPattern.MatchString(color) {
		return text
	}
	// a Caser keeps state, so one per call
	color = cases.Lower(language.Und).String(color)
	return span("color: "+color+";", text)
}

func fontRule(text, _ string, attrs Attributes) string {
	font, ok := attrs.Value()
	if !ok || !wordPattern.MatchString(font) {
		return text
	}
	return span("font-family: "+font+";", text)
}

func sizeRule(text, _ string, attrs Attributes) string {
	size, ok := attrs.Value()
	if !ok || !digitsPattern.MatchString(size) {
		return text
	}
	return span("font-size: "+size+"px;", text)
}

func urlRule(text, _ string, attrs Attributes) string {
	href, ok := attrs.Value()
	if !ok || !urlPattern.MatchString(href) {
		return text
	}
	return `<a href="` + href + `">` + text + `</a>`
}

func imgRule(src, _ string, attrs Attributes) string {
	if !urlPattern.MatchString(src) {
		return ""
	}
	width, height := imageSize(attrs)
	if digitsPattern.MatchString(width) && digitsPattern.MatchString(height) {
		return `<img src="` + src + `" width="` + width + `" height="` + height + `"/>`
	}
	return `<img src="` + src + `"/>`
}

// imageSize reads "WxH" from a single value or width/height from named
// attributes. Missing parts come back empty.
func imageSize(attrs Attributes) (width, height string) {
	switch attrs.Kind() {
	case AttrSingle:
		v, _ := attrs.Value()
		if m := dimensionsPattern.FindStringSubmatch(v); m != nil {
			return m[1], m[2]
		}
	case AttrNamed:
		width, _ = attrs.Get("width")
		height, _ = attrs.Get("height")
	}
	return width, height
}
