package setup

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Layout describes the cards of every zone of a tabletop, the stand-in for
// the templating layer that would normally produce the document. Format:
//
//	hand:
//	  "Dragon Whelp" dragon_whelp.jpg
//	creatures:
//	  "Shivan Dragon" shivan_dragon.jpg tapped
type Layout struct {
	Sections []*Section `parser:"@@*"`
}

type Section struct {
	Zone  string   `parser:"@Word \":\""`
	Cards []*Entry `parser:"@@*"`
}

type Entry struct {
	Name   string `parser:"@String"`
	Image  string `parser:"@Word"`
	Tapped bool   `parser:"@\"tapped\"?"`
}

type LayoutParser struct {
	parser *participle.Parser[Layout]
}

func NewLayoutParser() *LayoutParser {
	parser := participle.MustBuild[Layout](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{Name: "whitespace", Pattern: `[\s]+`},
			{Name: "comment", Pattern: `#[^\n]*`},
			{Name: "String", Pattern: `"[^"]*"`},
			{Name: "Punct", Pattern: `[:]`},
			{Name: "Word", Pattern: `[a-zA-Z_][a-zA-Z0-9_./-]*`},
		})),
		participle.Unquote("String"),
	)
	return &LayoutParser{parser}
}

func (p *LayoutParser) Parse(txt string) (*Layout, error) {
	layout, err := p.parser.ParseString("", txt)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	return layout, nil
}

func (p *LayoutParser) ParseFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}
	return p.Parse(string(data))
}
