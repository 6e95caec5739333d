package bbcode

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the environment form of the converter settings.
type Config struct {
	RuleSet    string   `env:"BBCODE_RULE_SET" envDefault:"html"`                 // RuleSet names the preset: "html" or "strip".
	LineTags   []string `env:"BBCODE_LINE_TAGS" envDefault:"*" envSeparator:","` // LineTags is a comma separated list of tags closed by a newline.
	EscapeText bool     `env:"BBCODE_ESCAPE_TEXT" envDefault:"false"`            // EscapeText HTML-escapes text leaves.
	CacheSize  int      `env:"BBCODE_CACHE_SIZE" envDefault:"0"`                 // CacheSize is the number of memoized conversions, 0 disables the cache.
	RulesFile  string   `env:"BBCODE_RULES_FILE"`                                // RulesFile is an optional YAML rule table merged over the preset.
}

// LoadConfig reads Config from the environment. Without arguments a .env
// file in the working directory is loaded if present; named files must
// exist. Variables already set in the process take precedence over files.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnv, err)
		}
	} else {
		// the default .env is optional
		_ = godotenv.Load()
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds a converter from cfg. opts are applied after the
// settings taken from cfg and can override them.
func NewFromConfig(cfg Config, opts ...Option) (*Converter, error) {
	rules, err := Preset(cfg.RuleSet)
	if err != nil {
		return nil, err
	}
	if cfg.RulesFile != "" {
		table, err := LoadRulesFile(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = rules.Merge(table)
	}

	base := []Option{
		WithRules(rules),
		WithLineTags(cleanNames(cfg.LineTags)...),
		WithCache(cfg.CacheSize),
	}
	if cfg.EscapeText {
		base = append(base, WithTextEscaper(EscapeHTML))
	}
	return New(append(base, opts...)...), nil
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
