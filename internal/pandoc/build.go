package pandoc

import "fmt"

// NullAttr is an empty pandoc attribute triple (id, classes, key-values).
func NullAttr() []any {
	return []any{"", []any{}, []any{}}
}

// Str builds a plain text run.
func Str(text string) *Node {
	return &Node{Kind: KindStr, Content: text}
}

// Space builds an inter-word space.
func Space() *Node {
	return &Node{Kind: KindSpace}
}

// Strong builds a strong span over the given inlines.
func Strong(inlines ...*Node) *Node {
	return &Node{Kind: KindStrong, Content: asList(inlines)}
}

// Plain builds a plain (non-paragraph) block over the given inlines.
func Plain(inlines ...*Node) *Node {
	return &Node{Kind: KindPlain, Content: asList(inlines)}
}

// Para builds a paragraph over the given inlines.
func Para(inlines ...*Node) *Node {
	return &Node{Kind: KindPara, Content: asList(inlines)}
}

// Header builds a header of the given level over the given inlines.
func Header(level int, inlines ...*Node) *Node {
	return &Node{Kind: KindHeader, Content: []any{level, NullAttr(), asList(inlines)}}
}

// RawInline builds a raw inline emitted verbatim by the named writer.
func RawInline(format, text string) *Node {
	return &Node{Kind: KindRawInline, Content: []any{format, text}}
}

// BulletList builds a bullet list; each item is a sequence of blocks.
func BulletList(items ...[]any) *Node {
	content := make([]any, len(items))
	for i, item := range items {
		content[i] = item
	}
	return &Node{Kind: KindBulletList, Content: content}
}

// Link builds a hyperlink. The label may be a string, a single *Node, or a
// []any of inline nodes.
func Link(label any, url string) *Node {
	var inlines []any
	switch v := label.(type) {
	case string:
		inlines = []any{Str(v)}
	case *Node:
		inlines = []any{v}
	case []any:
		inlines = v
	}
	return &Node{Kind: KindLink, Content: []any{NullAttr(), inlines, []any{url, ""}}}
}

func asList(nodes []*Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// headerPayload checks the Header payload shape: [level, attr, inlines].
func headerPayload(n *Node) ([]any, error) {
	if n.Kind != KindHeader {
		return nil, fmt.Errorf("node is %s, not Header", n.Kind)
	}
	payload, ok := n.Content.([]any)
	if !ok || len(payload) != 3 {
		return nil, fmt.Errorf("malformed Header payload %T", n.Content)
	}
	return payload, nil
}

// HeaderLevel reads a header's nesting level.
func HeaderLevel(n *Node) (int, error) {
	payload, err := headerPayload(n)
	if err != nil {
		return 0, err
	}
	switch v := payload[0].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, fmt.Errorf("malformed Header level %T", payload[0])
}

// SetHeaderLevel writes a header's nesting level in place.
func SetHeaderLevel(n *Node, level int) error {
	payload, err := headerPayload(n)
	if err != nil {
		return err
	}
	payload[0] = level
	return nil
}

// HeaderInlines reads a header's inline content sequence.
func HeaderInlines(n *Node) ([]any, error) {
	payload, err := headerPayload(n)
	if err != nil {
		return nil, err
	}
	inlines, ok := payload[2].([]any)
	if !ok {
		return nil, fmt.Errorf("malformed Header inlines %T", payload[2])
	}
	return inlines, nil
}

// SetHeaderInlines replaces a header's inline content sequence in place.
func SetHeaderInlines(n *Node, inlines []any) error {
	payload, err := headerPayload(n)
	if err != nil {
		return err
	}
	payload[2] = inlines
	return nil
}
