package bbcode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleTable is the YAML form of a rule set built from fixed wrappers:
//
//	rules:
//	  quote:
//	    open: "<blockquote>"
//	    close: "</blockquote>"
//	  code:
//	    element: pre
type RuleTable struct {
	Rules map[string]WrapSpec `yaml:"rules"`
}

// WrapSpec describes one wrapper. Element is shorthand for an HTML element
// and cannot be combined with Open or Close.
type WrapSpec struct {
	Element string `yaml:"element"`
	Open    string `yaml:"open"`
	Close   string `yaml:"close"`
}

// RuleSet validates the table and builds its rules.
func (t RuleTable) RuleSet() (RuleSet, error) {
	set := make(RuleSet, len(t.Rules))
	for name, spec := range t.Rules {
		if name == "" || strings.ContainsAny(name, "[]= ") {
			return nil, fmt.Errorf("%w: tag name %q", ErrInvalidRules, name)
		}
		switch {
		case spec.Element != "" && (spec.Open != "" || spec.Close != ""):
			return nil, fmt.Errorf("%w: tag %q sets both element and open/close", ErrInvalidRules, name)
		case spec.Element != "":
			set[name] = Element(spec.Element)
		default:
			set[name] = Wrap(spec.Open, spec.Close)
		}
	}
	return set, nil
}

// LoadRules decodes a YAML rule table. Unknown fields are rejected; an
// empty document yields an empty set.
func LoadRules(r io.Reader) (RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t RuleTable
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return RuleSet{}, nil
		}
		return nil, errors.Join(ErrInvalidRules, err)
	}
	return t.RuleSet()
}

// LoadRulesFile is LoadRules on a file.
func LoadRulesFile(path string) (RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidRules, err)
	}
	defer f.Close()
	return LoadRules(f)
}
