package filter

import (
	"strings"

	"github.com/dgallion1/mandown/internal/pandoc"
)

// AutoLinkURIs wraps every plain text run starting with "http" in a link
// whose label and target are the text itself.
type AutoLinkURIs struct {
	// relinked remembers the last value wrapped in a link. The walk visits
	// the new link's label text run next, with identical content; matching
	// it here stops that visit from linking again. Consumed on first match.
	relinked string
}

func NewAutoLinkURIs() *AutoLinkURIs {
	return &AutoLinkURIs{}
}

func (p *AutoLinkURIs) Name() string { return "autolink-uris" }

func (p *AutoLinkURIs) Visit(n *pandoc.Node) ([]*pandoc.Node, error) {
	if n.Kind != pandoc.KindStr {
		return nil, nil
	}
	value, ok := n.Content.(string)
	if !ok || !strings.HasPrefix(value, "http") {
		return nil, nil
	}
	if p.relinked == value {
		p.relinked = ""
		return nil, nil
	}
	p.relinked = value
	return []*pandoc.Node{pandoc.Link(value, value)}, nil
}
