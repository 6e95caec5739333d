package bbcode

import "errors"

var (
	// ErrNoProgress is returned by Tokenize when no grammar rule matches at some
	// offset. The garbage rule makes this unreachable; seeing it means the
	// grammar is broken.
	ErrNoProgress = errors.New("bbcode: tokenizer made no progress")

	// ErrUnknownRuleSet is returned when a rule set preset name is not registered.
	ErrUnknownRuleSet = errors.New("bbcode: unknown rule set")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("bbcode: failed to parse environment variables into config")

	// ErrLoadingEnv is returned when an explicitly requested .env file cannot be loaded.
	ErrLoadingEnv = errors.New("bbcode: failed to load env file")

	// ErrInvalidRules is returned when a YAML rule table cannot be decoded or is malformed.
	ErrInvalidRules = errors.New("bbcode: invalid rule table")
)
