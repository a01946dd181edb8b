package filter

import (
	"github.com/dgallion1/mandown/internal/pandoc"
	"github.com/dgallion1/mandown/internal/toc"
)

// AutoLinkSections links strong spans whose flattened text names a section
// heading to that section's in-page anchor. Runs against the section set
// GatherToc finished building.
type AutoLinkSections struct {
	toc *toc.Builder
}

func NewAutoLinkSections(b *toc.Builder) *AutoLinkSections {
	return &AutoLinkSections{toc: b}
}

func (p *AutoLinkSections) Name() string { return "autolink-sections" }

func (p *AutoLinkSections) Visit(n *pandoc.Node) ([]*pandoc.Node, error) {
	if n.Kind != pandoc.KindStrong {
		return nil, nil
	}
	text := pandoc.Stringify(n)
	if p.toc.HasSection(text) {
		n.Content = []any{pandoc.Link(text, toc.Anchor(text))}
	}
	return nil, nil
}
