package pandoc

import (
	"bytes"
	"strings"
	"testing"
)

const sampleDoc = `{
  "pandoc-api-version": [1, 23, 1],
  "meta": {"title": {"t": "MetaString", "c": "nosig"}},
  "blocks": [
    {"t": "Header", "c": [1, ["", [], []], [{"t": "Str", "c": "NAME"}]]},
    {"t": "Para", "c": [
      {"t": "Str", "c": "nosig"},
      {"t": "Space"},
      {"t": "Str", "c": "-"},
      {"t": "Space"},
      {"t": "Strong", "c": [{"t": "Str", "c": "strip"}]}
    ]}
  ]
}`

func TestReadDoc_DecodesNodes(t *testing.T) {
	doc, err := ReadDoc(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(doc.Blocks))
	}

	header := doc.Blocks[0]
	if header.Kind != KindHeader {
		t.Errorf("expected Header, got %s", header.Kind)
	}
	level, err := HeaderLevel(header)
	if err != nil {
		t.Fatalf("HeaderLevel: %v", err)
	}
	if level != 1 {
		t.Errorf("expected level 1, got %d", level)
	}
	inlines, err := HeaderInlines(header)
	if err != nil {
		t.Fatalf("HeaderInlines: %v", err)
	}
	if got := Stringify(inlines); got != "NAME" {
		t.Errorf("expected header text %q, got %q", "NAME", got)
	}

	para := doc.Blocks[1]
	if para.Kind != KindPara {
		t.Errorf("expected Para, got %s", para.Kind)
	}
	if got := Stringify(para); got != "nosig - strip" {
		t.Errorf("expected para text %q, got %q", "nosig - strip", got)
	}
}

func TestDoc_WriteRoundTrip(t *testing.T) {
	doc, err := ReadDoc(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	again, err := ReadDoc(&buf)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}

	if len(again.Blocks) != len(doc.Blocks) {
		t.Fatalf("expected %d blocks after round trip, got %d", len(doc.Blocks), len(again.Blocks))
	}
	for i := range doc.Blocks {
		if again.Blocks[i].Kind != doc.Blocks[i].Kind {
			t.Errorf("block %d: kind %s != %s", i, again.Blocks[i].Kind, doc.Blocks[i].Kind)
		}
		if got, want := Stringify(again.Blocks[i]), Stringify(doc.Blocks[i]); got != want {
			t.Errorf("block %d: text %q != %q", i, got, want)
		}
	}
	if !strings.Contains(string(again.Meta), "MetaString") {
		t.Errorf("expected meta preserved, got %s", again.Meta)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"str", Str("hello"), "hello"},
		{"sequence", []any{Str("a"), Space(), Str("b")}, "a b"},
		{"nested strong", Strong(Str("see"), Space(), Str("also")), "see also"},
		{"link skips attr and target", Link("label", "http://x/"), "label"},
		{"space node", Space(), " "},
		{"raw inline contributes nothing", RawInline("markdown", `\-x`), ""},
	}
	for _, tt := range tests {
		if got := Stringify(tt.in); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestHeaderAccessors_Mutation(t *testing.T) {
	h := Header(2, Str("OPTIONS"))

	if err := SetHeaderLevel(h, 3); err != nil {
		t.Fatalf("SetHeaderLevel: %v", err)
	}
	if level, _ := HeaderLevel(h); level != 3 {
		t.Errorf("expected level 3, got %d", level)
	}

	if err := SetHeaderInlines(h, []any{Str("Options")}); err != nil {
		t.Fatalf("SetHeaderInlines: %v", err)
	}
	if got := Stringify(h); got != "Options" {
		t.Errorf("expected %q, got %q", "Options", got)
	}
}

func TestHeaderAccessors_WrongKind(t *testing.T) {
	if _, err := HeaderLevel(Str("not a header")); err == nil {
		t.Error("expected error for non-header node")
	}
	if _, err := HeaderInlines(Para(Str("x"))); err == nil {
		t.Error("expected error for non-header node")
	}
}

func TestLink_LabelShapes(t *testing.T) {
	for _, label := range []any{"text", Str("text"), []any{Str("text")}} {
		l := Link(label, "http://example.com/")
		if l.Kind != KindLink {
			t.Fatalf("expected Link, got %s", l.Kind)
		}
		if got := Stringify(l); got != "text" {
			t.Errorf("label %T: expected text %q, got %q", label, "text", got)
		}
		payload := l.Content.([]any)
		target := payload[2].([]any)
		if target[0] != "http://example.com/" {
			t.Errorf("label %T: expected url, got %v", label, target[0])
		}
	}
}
