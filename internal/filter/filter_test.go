package filter

import (
	"testing"

	"github.com/dgallion1/mandown/internal/pandoc"
)

// docOf wraps blocks in a document the way the filter receives one.
func docOf(blocks ...*pandoc.Node) *pandoc.Doc {
	return &pandoc.Doc{APIVersion: []int{1, 23, 1}, Blocks: blocks}
}

// linkTarget digs the url out of a Link payload.
func linkTarget(t *testing.T, n *pandoc.Node) string {
	t.Helper()
	if n.Kind != pandoc.KindLink {
		t.Fatalf("expected Link, got %s", n.Kind)
	}
	payload, ok := n.Content.([]any)
	if !ok || len(payload) != 3 {
		t.Fatalf("malformed Link payload %#v", n.Content)
	}
	target, ok := payload[2].([]any)
	if !ok || len(target) != 2 {
		t.Fatalf("malformed Link target %#v", payload[2])
	}
	return target[0].(string)
}

// linkLabel digs the inline label sequence out of a Link payload.
func linkLabel(t *testing.T, n *pandoc.Node) []any {
	t.Helper()
	if n.Kind != pandoc.KindLink {
		t.Fatalf("expected Link, got %s", n.Kind)
	}
	return n.Content.([]any)[1].([]any)
}

// inlineAt returns the i-th inline child of a block.
func inlineAt(t *testing.T, block *pandoc.Node, i int) *pandoc.Node {
	t.Helper()
	list, ok := block.Content.([]any)
	if !ok {
		t.Fatalf("block %s has no inline sequence", block.Kind)
	}
	if i >= len(list) {
		t.Fatalf("block has %d inlines, want index %d", len(list), i)
	}
	n, ok := list[i].(*pandoc.Node)
	if !ok {
		t.Fatalf("inline %d is %T, not a node", i, list[i])
	}
	return n
}

// replaceKind swaps every node of one kind for a fixed sequence.
type replaceKind struct {
	kind string
	with []*pandoc.Node
}

func (p *replaceKind) Name() string { return "replace-" + p.kind }

func (p *replaceKind) Visit(n *pandoc.Node) ([]*pandoc.Node, error) {
	if n.Kind != p.kind {
		return nil, nil
	}
	return p.with, nil
}

func TestApply_LeavesUnhandledKindsUntouched(t *testing.T) {
	doc := docOf(pandoc.Para(pandoc.Str("hello")), pandoc.Header(2, pandoc.Str("X")))
	if err := Apply(doc, &replaceKind{kind: "NoSuchKind"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(doc.Blocks))
	}
	if got := pandoc.Stringify(doc.Blocks[0]); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestApply_SplicesSequenceReplacements(t *testing.T) {
	doc := docOf(
		pandoc.Header(2, pandoc.Str("A")),
		pandoc.Para(pandoc.Str("body")),
		pandoc.Header(2, pandoc.Str("B")),
	)
	p := &replaceKind{
		kind: pandoc.KindPara,
		with: []*pandoc.Node{pandoc.Plain(pandoc.Str("one")), pandoc.Plain(pandoc.Str("two"))},
	}
	if err := Apply(doc, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kinds := make([]string, len(doc.Blocks))
	for i, b := range doc.Blocks {
		kinds[i] = b.Kind
	}
	want := []string{"Header", "Plain", "Plain", "Header"}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d blocks, got %v", len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("block %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestApply_EmptyReplacementDeletes(t *testing.T) {
	doc := docOf(pandoc.Para(pandoc.Str("gone")), pandoc.Plain(pandoc.Str("kept")))
	p := &replaceKind{kind: pandoc.KindPara, with: []*pandoc.Node{}}
	if err := Apply(doc, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != pandoc.KindPlain {
		t.Fatalf("expected only the Plain block to remain, got %v", doc.Blocks)
	}
}
