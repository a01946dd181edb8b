package filter

import (
	"strings"
	"unicode"

	"github.com/dgallion1/mandown/internal/pandoc"
	"github.com/dgallion1/mandown/internal/toc"
)

// GatherToc records every header into the TOC builder and normalizes header
// formatting on the way: levels move down one to make room for the
// synthesized title, and all-caps section names become title case.
// AutoLinkSections and NameToTitle read the builder this pass fills, so it
// must complete its walk before they run.
type GatherToc struct {
	toc *toc.Builder
}

func NewGatherToc() *GatherToc {
	return &GatherToc{toc: toc.NewBuilder()}
}

// Toc exposes the builder for the passes that consume it.
func (p *GatherToc) Toc() *toc.Builder { return p.toc }

func (p *GatherToc) Name() string { return "gather-toc" }

func (p *GatherToc) Visit(n *pandoc.Node) ([]*pandoc.Node, error) {
	if n.Kind != pandoc.KindHeader {
		return nil, nil
	}
	inlines, err := pandoc.HeaderInlines(n)
	if err != nil {
		return nil, err
	}
	text := pandoc.Stringify(inlines)
	// NAME is rewritten into the page title later; keep it out of the TOC.
	if text == "NAME" {
		return nil, nil
	}

	level, err := pandoc.HeaderLevel(n)
	if err != nil {
		return nil, err
	}
	level++
	if err := pandoc.SetHeaderLevel(n, level); err != nil {
		return nil, err
	}

	if text == strings.ToUpper(text) {
		text = titleCase(text)
		if err := pandoc.SetHeaderInlines(n, []any{pandoc.Str(text)}); err != nil {
			return nil, err
		}
	}

	return nil, p.toc.Add(level, text)
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest, word boundaries being any non-letter.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	newWord := true
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			newWord = true
		case newWord:
			b.WriteRune(unicode.ToUpper(r))
			newWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
