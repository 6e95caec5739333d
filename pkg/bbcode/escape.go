package bbcode

import "golang.org/x/net/html"

// EscapeHTML escapes <, >, &, ' and " in text leaves. Use it with
// WithTextEscaper when the input is not trusted; rule output is not escaped.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}
