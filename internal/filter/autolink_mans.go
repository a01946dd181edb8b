package filter

import (
	"fmt"
	"regexp"

	"github.com/dgallion1/mandown/internal/pandoc"
)

// manRefPattern matches the text run that follows a strong page name in the
// "pagename(1)" cross-reference idiom, capturing the section digit and any
// trailing text.
var manRefPattern = regexp.MustCompile(`^\(([0-9])\)(.*)$`)

// AutoLinkMans links man-page cross references. The idiom spans two adjacent
// inline siblings, Strong("pagename") followed by Str("(1)..."), so this
// pass scans paragraph child sequences rather than single nodes.
type AutoLinkMans struct {
	host string
}

func NewAutoLinkMans(host string) *AutoLinkMans {
	return &AutoLinkMans{host: host}
}

func (p *AutoLinkMans) Name() string { return "autolink-mans" }

func (p *AutoLinkMans) url(section, page string) string {
	return fmt.Sprintf("http://%s/linux/man-pages/man%s/%s.%s.html", p.host, section, page, section)
}

func (p *AutoLinkMans) Visit(n *pandoc.Node) ([]*pandoc.Node, error) {
	if n.Kind != pandoc.KindPara {
		return nil, nil
	}
	value, ok := n.Content.([]any)
	if !ok {
		return nil, nil
	}
	for i := 0; i < len(value); i++ {
		strong, ok := value[i].(*pandoc.Node)
		if !ok || strong.Kind != pandoc.KindStrong {
			continue
		}
		if i+1 >= len(value) {
			break
		}
		next, ok := value[i+1].(*pandoc.Node)
		if !ok || next.Kind != pandoc.KindStr {
			continue
		}
		text, _ := next.Content.(string)
		m := manRefPattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		page := pandoc.Stringify(strong)
		sect, rest := m[1], m[2]

		label := []any{pandoc.Strong(pandoc.Str(page)), pandoc.Str("(" + sect + ")")}
		repl := []any{pandoc.Link(label, p.url(sect, page))}
		if rest != "" {
			repl = append(repl, pandoc.Str(rest))
		}

		out := make([]any, 0, len(value)+len(repl)-2)
		out = append(out, value[:i]...)
		out = append(out, repl...)
		out = append(out, value[i+2:]...)
		value = out
		n.Content = value
	}
	return nil, nil
}
