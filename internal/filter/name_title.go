package filter

import (
	"fmt"
	"strings"

	"github.com/dgallion1/mandown/internal/pandoc"
	"github.com/dgallion1/mandown/internal/toc"
)

// NameToTitle rewrites the leading NAME section into a title for the whole
// page. The first header must be the level-1 NAME header; the paragraph that
// follows it ("name - description") becomes the title text "name(1):
// description" written into that header, and the paragraph itself is
// replaced by the rendered table of contents. Happens exactly once.
type NameToTitle struct {
	toc     *toc.Builder
	section string

	header *pandoc.Node
	done   bool
}

func NewNameToTitle(b *toc.Builder, section string) *NameToTitle {
	return &NameToTitle{toc: b, section: section}
}

func (p *NameToTitle) Name() string { return "name-to-title" }

func (p *NameToTitle) Visit(n *pandoc.Node) ([]*pandoc.Node, error) {
	switch n.Kind {
	case pandoc.KindHeader:
		return nil, p.visitHeader(n)
	case pandoc.KindPara:
		return p.visitPara(n)
	}
	return nil, nil
}

// visitHeader captures the first header so visitPara can rewrite its content
// once the title text is known.
func (p *NameToTitle) visitHeader(n *pandoc.Node) error {
	if p.done || p.header != nil {
		return nil
	}
	level, err := pandoc.HeaderLevel(n)
	if err != nil {
		return err
	}
	if level != 1 {
		return fmt.Errorf("first header has level %d, want 1", level)
	}
	inlines, err := pandoc.HeaderInlines(n)
	if err != nil {
		return err
	}
	if text := pandoc.Stringify(inlines); text != "NAME" {
		return fmt.Errorf("first header is %q, want NAME", text)
	}
	p.header = n
	return nil
}

func (p *NameToTitle) visitPara(n *pandoc.Node) ([]*pandoc.Node, error) {
	if p.done {
		return nil, nil
	}
	if p.header == nil {
		return nil, fmt.Errorf("paragraph before the NAME header")
	}

	// "nosig - strip signatures" becomes "nosig(1): strip signatures".
	fields := strings.Fields(pandoc.Stringify(n))
	if len(fields) < 2 {
		return nil, fmt.Errorf("NAME paragraph %q: want \"name - description\"", pandoc.Stringify(n))
	}
	title := make([]string, 0, len(fields)-1)
	title = append(title, fields[0]+"("+p.section+"):")
	title = append(title, fields[2:]...)

	p.done = true
	if err := pandoc.SetHeaderInlines(p.header, []any{pandoc.Str(strings.Join(title, " "))}); err != nil {
		return nil, err
	}
	return p.toc.Render(), nil
}
