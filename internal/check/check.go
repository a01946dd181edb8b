package check

import (
	"strings"

	"github.com/dgallion1/mandown/internal/toc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Report is the in-page anchor state of a rendered markdown document.
type Report struct {
	Headings []string `json:"headings"` // anchor of every heading, in order
	Links    []string `json:"links"`    // every in-page link target, in order
	Dangling []string `json:"dangling"` // link targets with no matching heading
}

// OK reports whether every in-page link resolves to a heading.
func (r Report) OK() bool { return len(r.Dangling) == 0 }

// Run parses rendered markdown and cross-checks in-page links against the
// anchors its headings produce. The anchor rule is the same one the filter
// uses when it generates section links, so a clean report means the two
// sides agree.
func Run(src []byte) Report {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var rep Report
	anchors := make(map[string]bool)
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			a := toc.Anchor(string(node.Text(src)))
			rep.Headings = append(rep.Headings, a)
			anchors[a] = true
		case *ast.Link:
			if dest := string(node.Destination); strings.HasPrefix(dest, "#") {
				rep.Links = append(rep.Links, dest)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, l := range rep.Links {
		if !anchors[l] {
			rep.Dangling = append(rep.Dangling, l)
		}
	}
	return rep
}
