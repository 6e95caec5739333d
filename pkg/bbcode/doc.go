// Package bbcode converts BBCode-like bracket markup into HTML or any other
// output produced by a table of per-tag rules.
//
// Conversion runs in four pure stages, each exported on its own:
//
//   - Tokenize splits the input into open tags, close tags, text, newlines
//     and garbage (lone brackets). It never fails on user input.
//   - Sanitize repairs the nesting: orphan close tags are dropped, a close
//     tag that crosses other open tags closes them first, and a newline
//     closes the innermost open line tag ([*] by default). The result is
//     well nested and carries a Sane flag.
//   - BuildTree folds the sanitized tokens into a tree of *Tag and *Text
//     nodes under a *Root.
//   - Render walks the tree bottom-up and hands each tag's rendered content
//     to the Rule registered for its name, or to the unsupported rule.
//
// # Usage
//
//	conv := bbcode.New()
//	html, err := conv.Convert("[b]Hello[/b] [color=#FF0000]World[/color]")
//	// html == `<b>Hello</b> <span style="color: #ff0000;">World</span>`
//
// NewFunc returns the same conversion as a plain func(string) string.
//
// # Rule sets
//
// HTML (the default) knows b, i, u, s, color, font, size, url and img; Strip
// is empty, so every tag goes to the unsupported rule. Preset looks both up
// by name, RuleSet.Merge layers custom rules on top, and LoadRules reads
// simple wrapper rules from YAML. Recode writes tags back in bracket form:
//
//	conv := bbcode.New(
//	    bbcode.WithRules(bbcode.Strip()),
//	    bbcode.WithUnsupported(bbcode.Recode(bbcode.NewTagSet("*"))),
//	)
//	out, _ := conv.Convert("[a][b]Foo[/a][/b]") // "[a][b]Foo[/b][/a]"
//
// Rules receive text exactly as written unless WithTextEscaper is set; the
// HTML rules validate attributes but do not escape them.
//
// # Configuration
//
// Config holds the settings in environment form (BBCODE_RULE_SET,
// BBCODE_LINE_TAGS, BBCODE_ESCAPE_TEXT, BBCODE_CACHE_SIZE,
// BBCODE_RULES_FILE); LoadConfig reads it and NewFromConfig turns it into a
// Converter.
//
// # Error handling
//
// Malformed markup is not an error. Inspect reports whether repairs were
// needed and the converter logs them at debug level through the logger set
// with WithLogger. The only error, ErrNoProgress, means the tokenizer
// grammar is broken.
//
// # Concurrency
//
// A Converter is immutable after New and may be shared between goroutines.
// The optional cache (WithCache) is guarded by a mutex.
package bbcode
