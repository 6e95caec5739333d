package bbcode

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/bbfy/pkg/logger"
)

// DefaultLineTag is the list-item tag that ends at the next newline.
const DefaultLineTag = "*"

// Report describes one conversion.
type Report struct {
	Output string
	// Sane is false when the markup had to be repaired.
	Sane bool
	// Unclosed lists tags still open at end of input, innermost first.
	Unclosed []TagRef
	// Repairs counts repair events, see Sanitized.Repairs.
	Repairs int
}

// Converter runs the whole pipeline with a fixed configuration. It is
// immutable after New and safe for concurrent use.
type Converter struct {
	rules       RuleSet
	unsupported Rule
	lineTags    TagSet
	escape      func(string) string
	log         *slog.Logger
	cacheSize   int
	memo        *memo
}

// Option configures a Converter.
type Option func(*Converter)

// WithRules replaces the HTML rule set. The set is copied.
func WithRules(rules RuleSet) Option {
	return func(c *Converter) {
		c.rules = RuleSet{}.Merge(rules)
	}
}

// WithUnsupported sets the rule for tags missing from the rule set.
// Nil is ignored.
func WithUnsupported(r Rule) Option {
	return func(c *Converter) {
		if r != nil {
			c.unsupported = r
		}
	}
}

// WithLineTags replaces the set of tags closed by a newline. Calling it with
// no names disables line tags.
func WithLineTags(names ...string) Option {
	return func(c *Converter) {
		c.lineTags = NewTagSet(names...)
	}
}

// WithTextEscaper filters every text leaf before rules see it, e.g.
// EscapeHTML for untrusted input.
func WithTextEscaper(fn func(string) string) Option {
	return func(c *Converter) {
		c.escape = fn
	}
}

// WithLogger sets the logger for repair diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCache memoizes up to size conversions. Zero or less disables it.
func WithCache(size int) Option {
	return func(c *Converter) {
		c.cacheSize = size
	}
}

// New creates a converter. Without options it renders HTML with the HTML
// rule set, passes unknown tags' content through and treats [*] as a line
// tag.
func New(opts ...Option) *Converter {
	c := &Converter{
		rules:       HTML(),
		unsupported: Passthrough,
		lineTags:    NewTagSet(DefaultLineTag),
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cacheSize > 0 {
		c.memo = newMemo(c.cacheSize)
	}
	c.log = c.log.With(logger.Component("bbcode"))
	return c
}

// NewFunc returns the conversion as a plain function. The function panics
// only if the tokenizer reports ErrNoProgress.
func NewFunc(opts ...Option) func(string) string {
	return New(opts...).MustConvert
}

// Convert converts text. Malformed markup is repaired, never rejected; the
// only error is ErrNoProgress from Tokenize.
func (c *Converter) Convert(text string) (string, error) {
	return c.ConvertContext(context.Background(), text)
}

// ConvertContext is Convert with a context for the logger.
func (c *Converter) ConvertContext(ctx context.Context, text string) (string, error) {
	r, err := c.Inspect(ctx, text)
	if err != nil {
		return "", err
	}
	return r.Output, nil
}

// MustConvert is like Convert but panics on error.
func (c *Converter) MustConvert(text string) string {
	out, err := c.Convert(text)
	if err != nil {
		panic(err)
	}
	return out
}

// Inspect converts text and reports whether it needed repair. Repaired
// input is logged at debug level on every call, cached or not.
func (c *Converter) Inspect(ctx context.Context, text string) (Report, error) {
	start := time.Now()

	if c.memo != nil {
		if r, ok := c.memo.get(text); ok {
			c.logRepair(ctx, r, len(text), time.Since(start), true)
			return r, nil
		}
	}

	tokens, err := Tokenize(text)
	if err != nil {
		c.log.ErrorContext(ctx, "tokenize markup", logger.Error(err), logger.InputSize(len(text)))
		return Report{}, err
	}

	s := Sanitize(tokens, c.lineTags)
	r := Report{
		Output:   RenderWith(BuildTree(s.Tokens), c.rules, c.unsupported, c.escape),
		Sane:     s.Sane,
		Unclosed: s.Unclosed,
		Repairs:  s.Repairs(),
	}

	if c.memo != nil {
		c.memo.put(text, r)
	}
	c.logRepair(ctx, r, len(text), time.Since(start), false)
	return r, nil
}

func (c *Converter) logRepair(ctx context.Context, r Report, size int, elapsed time.Duration, cached bool) {
	if r.Sane {
		return
	}
	c.log.DebugContext(ctx, "markup repaired",
		logger.Sane(false),
		logger.Repairs(r.Repairs),
		logger.Unclosed(tagNames(r.Unclosed)...),
		logger.InputSize(size),
		logger.Duration(elapsed),
		logger.Cached(cached),
	)
}

func tagNames(refs []TagRef) []string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return names
}
