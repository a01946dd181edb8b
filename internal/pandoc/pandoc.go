package pandoc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Node kinds this filter cares about. The model itself is kind-agnostic and
// round-trips kinds it has never heard of.
const (
	KindStr        = "Str"
	KindSpace      = "Space"
	KindSoftBreak  = "SoftBreak"
	KindLineBreak  = "LineBreak"
	KindStrong     = "Strong"
	KindEmph       = "Emph"
	KindLink       = "Link"
	KindHeader     = "Header"
	KindPara       = "Para"
	KindPlain      = "Plain"
	KindBulletList = "BulletList"
	KindRawInline  = "RawInline"
)

// Node is one element of the pandoc document tree: a kind tag plus a payload
// whose shape depends on the kind. Content is nil (Space), a string (Str),
// or a []any mixing scalars, nested []any and *Node (everything else).
type Node struct {
	Kind    string
	Content any
}

// Doc is a top-level pandoc JSON document. Meta is kept raw so documents
// round-trip untouched; the pipeline never reads it.
type Doc struct {
	APIVersion []int           `json:"pandoc-api-version"`
	Meta       json.RawMessage `json:"meta"`
	Blocks     []*Node         `json:"blocks"`
}

// ReadDoc decodes a pandoc JSON document from r.
func ReadDoc(r io.Reader) (*Doc, error) {
	var d Doc
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode pandoc document: %w", err)
	}
	return &d, nil
}

// Write encodes the document back to pandoc JSON.
func (d *Doc) Write(w io.Writer) error {
	if d.Meta == nil {
		d.Meta = json.RawMessage("{}")
	}
	if d.Blocks == nil {
		d.Blocks = []*Node{}
	}
	return json.NewEncoder(w).Encode(d)
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		T string          `json:"t"`
		C json.RawMessage `json:"c"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.T == "" {
		return fmt.Errorf("node missing \"t\" tag")
	}
	n.Kind = raw.T
	if raw.C == nil {
		n.Content = nil
		return nil
	}
	var c any
	if err := json.Unmarshal(raw.C, &c); err != nil {
		return err
	}
	n.Content = fromJSON(c)
	return nil
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(n))
}

// fromJSON rebuilds a decoded JSON value, turning every object carrying a
// "t" tag into a *Node.
func fromJSON(v any) any {
	switch v := v.(type) {
	case map[string]any:
		if t, ok := v["t"].(string); ok {
			n := &Node{Kind: t}
			if c, ok := v["c"]; ok {
				n.Content = fromJSON(c)
			}
			return n
		}
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = fromJSON(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = fromJSON(e)
		}
		return out
	default:
		return v
	}
}

func toJSON(v any) any {
	switch v := v.(type) {
	case *Node:
		m := map[string]any{"t": v.Kind}
		if v.Content != nil {
			m["c"] = toJSON(v.Content)
		}
		return m
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = toJSON(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = toJSON(e)
		}
		return out
	default:
		return v
	}
}

// Stringify flattens the textual content of a node, a node list, or any
// nested mix of the two. Str nodes contribute their text; spaces and line
// breaks contribute a single space; everything else only its descendants.
func Stringify(v any) string {
	var b strings.Builder
	stringify(v, &b)
	return b.String()
}

func stringify(v any, b *strings.Builder) {
	switch v := v.(type) {
	case *Node:
		switch v.Kind {
		case KindStr:
			if s, ok := v.Content.(string); ok {
				b.WriteString(s)
			}
		case KindSpace, KindSoftBreak, KindLineBreak:
			b.WriteByte(' ')
		default:
			stringify(v.Content, b)
		}
	case []any:
		for _, e := range v {
			stringify(e, b)
		}
	}
}
