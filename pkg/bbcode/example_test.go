package bbcode_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/bbfy/pkg/bbcode"
)

func ExampleNew() {
	conv := bbcode.New()
	out, err := conv.Convert("[b]Hello[/b] [color=#FF0000]World[/color]")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: <b>Hello</b> <span style="color: #ff0000;">World</span>
}

func ExampleRecode() {
	convert := bbcode.NewFunc(
		bbcode.WithRules(bbcode.Strip()),
		bbcode.WithUnsupported(bbcode.Recode(bbcode.NewTagSet("*"))),
	)
	fmt.Println(convert("[a]Hello [b]cruel[/a] World![/b]"))
	// Output: [a]Hello [b]cruel[/b][/a] World!
}

func ExampleConverter_Inspect() {
	conv := bbcode.New()
	r, err := conv.Inspect(context.Background(), "[b][i]x[/b]")
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Output, r.Sane, r.Repairs)
	// Output: <b><i>x</i></b> false 1
}

func ExampleRuleSet_Merge() {
	rules := bbcode.HTML().Merge(bbcode.RuleSet{
		"quote": bbcode.Element("blockquote"),
		"code": bbcode.RuleFunc(func(text, _ string, attrs bbcode.Attributes) string {
			lang, _ := attrs.Value()
			return `<pre data-lang="` + lang + `">` + text + `</pre>`
		}),
	})
	convert := bbcode.NewFunc(bbcode.WithRules(rules))
	fmt.Println(convert("[quote][b]hi[/b][/quote] [code=go]x := 1[/code]"))
	// Output: <blockquote><b>hi</b></blockquote> <pre data-lang="go">x := 1</pre>
}

func ExampleLoadRules() {
	rules, err := bbcode.LoadRules(strings.NewReader("rules:\n  spoiler:\n    open: \"<details>\"\n    close: \"</details>\"\n"))
	if err != nil {
		panic(err)
	}
	convert := bbcode.NewFunc(bbcode.WithRules(bbcode.HTML().Merge(rules)))
	fmt.Println(convert("[spoiler]boo[/spoiler]"))
	// Output: <details>boo</details>
}

func ExampleTokenize() {
	tokens, err := bbcode.Tokenize("[url=http://x.io]go[/url]\n")
	if err != nil {
		panic(err)
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case bbcode.KindOpenTag:
			fmt.Println(tok.Kind, tok.Tag)
		default:
			fmt.Printf("%s %q\n", tok.Kind, tok.Value)
		}
	}
	// Output:
	// open-tag [url=http://x.io]
	// text "go"
	// close-tag "url"
	// newline "\n"
}
