package bbcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bbfy/pkg/bbcode"
)

func TestLoadRules(t *testing.T) {
	t.Parallel()

	doc := `
rules:
  quote:
    open: "<blockquote>"
    close: "</blockquote>"
  code:
    element: pre
  hr:
    open: "<hr/>"
`
	rules, err := bbcode.LoadRules(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "hr", "quote"}, rules.Tags())

	none := bbcode.Attributes{}
	assert.Equal(t, "<blockquote>x</blockquote>", rules["quote"].Render("x", "quote", none))
	assert.Equal(t, "<pre>x</pre>", rules["code"].Render("x", "code", none))
	assert.Equal(t, "<hr/>x", rules["hr"].Render("x", "hr", none))
}

func TestLoadRules_Empty(t *testing.T) {
	t.Parallel()

	rules, err := bbcode.LoadRules(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadRules_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "rules:\n  b:\n    wrap: x\n"},
		{"unknown top level field", "presets: {}\n"},
		{"element with open", "rules:\n  b:\n    element: strong\n    open: \"<b>\"\n"},
		{"tag name with space", "rules:\n  \"a b\":\n    element: em\n"},
		{"tag name with bracket", "rules:\n  \"a]\":\n    element: em\n"},
		{"not a mapping", "rules: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := bbcode.LoadRules(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, bbcode.ErrInvalidRules)
		})
	}
}

func TestLoadRulesFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := bbcode.LoadRulesFile(t.TempDir() + "/missing.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, bbcode.ErrInvalidRules)
}
