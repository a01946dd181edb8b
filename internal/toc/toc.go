package toc

import (
	"fmt"
	"strings"

	"github.com/dgallion1/mandown/internal/pandoc"
)

// Node is one heading in the synthesized table of contents. The root is
// synthetic: level 0, empty text, nil parent.
type Node struct {
	Level    int
	Text     string
	Parent   *Node
	Children []*Node
}

// Builder accumulates headings into a TOC tree plus a flat section set so
// later passes can test membership without walking the tree.
type Builder struct {
	root     *Node
	curr     *Node
	sections map[string]bool
}

func NewBuilder() *Builder {
	root := &Node{}
	return &Builder{
		root:     root,
		curr:     root,
		sections: make(map[string]bool),
	}
}

// Add records one heading. Headings arrive in document order; each attaches
// under the nearest ancestor of the current node whose level is strictly
// shallower, then becomes the current node. Heading text must be unique
// across the document.
func (b *Builder) Add(level int, text string) error {
	if b.sections[text] {
		return fmt.Errorf("duplicate section %q", text)
	}
	b.sections[text] = true

	parent := b.curr
	if level <= b.curr.Level {
		parent = b.curr.Parent
		for level <= parent.Level {
			parent = parent.Parent
		}
	}
	node := &Node{Level: level, Text: text, Parent: parent}
	parent.Children = append(parent.Children, node)
	b.curr = node
	return nil
}

// HasSection reports whether text was recorded as a heading.
func (b *Builder) HasSection(text string) bool {
	return b.sections[text]
}

// Render turns the gathered headings into a block sequence ready to splice
// into the document: one bullet list per top-level section, sub-sections
// nested inside their parent's list item.
func (b *Builder) Render() []*pandoc.Node {
	out := make([]*pandoc.Node, 0, len(b.root.Children))
	for _, c := range b.root.Children {
		out = append(out, c.render())
	}
	return out
}

func (n *Node) render() *pandoc.Node {
	item := []any{pandoc.Plain(pandoc.Link(n.Text, Anchor(n.Text)))}
	for _, c := range n.Children {
		item = append(item, c.render())
	}
	return pandoc.BulletList(item)
}

var anchorStrip = strings.NewReplacer("(", "", ")", "", "/", "")

// Anchor derives the in-page anchor GitHub generates for a heading: lower
// case, spaces become hyphens, parens and slashes dropped.
func Anchor(text string) string {
	return "#" + anchorStrip.Replace(strings.ReplaceAll(strings.ToLower(text), " ", "-"))
}
