package bbcode

import "regexp"

// Pre-compiled patterns used by the HTML rule set
var (
	// #rrggbb or a bare word such as "blue"
	colorPattern = regexp.MustCompile(`(?i)^(#[0-9a-f]{6}|\w+)$`)

	wordPattern   = regexp.MustCompile(`^\w+$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)

	// any RFC 3986 scheme or scheme-relative, e.g. ftp://host or //host
	urlPattern = regexp.MustCompile(`(?i)^(?:[a-z][a-z0-9+.-]*:)?//\S+$`)

	// [img=100x200]
	dimensionsPattern = regexp.MustCompile(`(\d+)x(\d+)`)
)
