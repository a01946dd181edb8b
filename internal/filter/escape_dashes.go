package filter

import (
	"strings"

	"github.com/dgallion1/mandown/internal/pandoc"
)

// EscapeDashes restores the \- escapes that the markdown writer strips from
// strong spans (https://github.com/jgm/pandoc/issues/6041) by swapping the
// affected text runs for raw markdown with every dash re-escaped.
type EscapeDashes struct{}

func NewEscapeDashes() *EscapeDashes {
	return &EscapeDashes{}
}

func (p *EscapeDashes) Name() string { return "escape-dashes" }

func (p *EscapeDashes) Visit(n *pandoc.Node) ([]*pandoc.Node, error) {
	if n.Kind != pandoc.KindStrong {
		return nil, nil
	}
	value, ok := n.Content.([]any)
	if !ok {
		return nil, nil
	}
	for i, ele := range value {
		run, ok := ele.(*pandoc.Node)
		if !ok || run.Kind != pandoc.KindStr {
			continue
		}
		text, ok := run.Content.(string)
		if !ok || !strings.HasPrefix(text, "-") {
			continue
		}
		value[i] = pandoc.RawInline("markdown", strings.ReplaceAll(text, "-", `\-`))
	}
	return nil, nil
}
