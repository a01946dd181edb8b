package filter

import (
	"fmt"

	"github.com/dgallion1/mandown/internal/pandoc"
)

// Pass is one rewrite applied over the whole document in a single walk.
// Visit is called once per node. A nil result leaves the node in place (the
// pass may still have mutated its content); a non-nil result replaces the
// node with the returned sequence, which may be shorter or longer than one.
// An error aborts the walk.
type Pass interface {
	Name() string
	Visit(n *pandoc.Node) ([]*pandoc.Node, error)
}

// Apply runs one pass over every node of the document. The walk hands a node
// to the pass first and then descends into whatever the pass produced, so
// the children of a replacement are themselves visited.
func Apply(doc *pandoc.Doc, p Pass) error {
	list := make([]any, len(doc.Blocks))
	for i, b := range doc.Blocks {
		list[i] = b
	}
	out, err := walk(list, p)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name(), err)
	}
	walked := out.([]any)
	blocks := make([]*pandoc.Node, 0, len(walked))
	for _, v := range walked {
		n, ok := v.(*pandoc.Node)
		if !ok {
			return fmt.Errorf("%s: block replaced with non-node %T", p.Name(), v)
		}
		blocks = append(blocks, n)
	}
	doc.Blocks = blocks
	return nil
}

func walk(v any, p Pass) (any, error) {
	switch v := v.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			n, ok := item.(*pandoc.Node)
			if !ok {
				w, err := walk(item, p)
				if err != nil {
					return nil, err
				}
				out = append(out, w)
				continue
			}
			repl, err := p.Visit(n)
			if err != nil {
				return nil, err
			}
			if repl == nil {
				w, err := walk(n, p)
				if err != nil {
					return nil, err
				}
				out = append(out, w)
				continue
			}
			for _, r := range repl {
				w, err := walk(r, p)
				if err != nil {
					return nil, err
				}
				out = append(out, w)
			}
		}
		return out, nil
	case *pandoc.Node:
		c, err := walk(v.Content, p)
		if err != nil {
			return nil, err
		}
		v.Content = c
		return v, nil
	default:
		return v, nil
	}
}
