package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestHover_Literal(t *testing.T) {
	content := `theme {
  accent = "#EB6F92"
}
`
	result := Analyze(content)
	if len(result.Colors) != 1 {
		t.Fatalf("got %d colors, want 1", len(result.Colors))
	}
	cl := result.Colors[0]

	pos := protocol.Position{Line: cl.Range.Start.Line, Character: cl.Range.Start.Character + 2}
	h := hover(result, pos)
	if h == nil {
		t.Fatal("expected non-nil hover result")
	}

	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("expected markdown kind, got %q", mc.Kind)
	}

	for _, want := range []string{"**#EB6F92**", "`rgb(235,111,146)`", "`hsl(343,76,68)`", "`rgba(235,111,146,1)`"} {
		if !strings.Contains(mc.Value, want) {
			t.Errorf("hover content missing %q, got:\n%s", want, mc.Value)
		}
	}

	if h.Range == nil || *h.Range != cl.Range {
		t.Errorf("hover range = %v, want %v", h.Range, cl.Range)
	}
}

func TestHover_Miss(t *testing.T) {
	content := `a = rgb(1,2,3)`
	result := Analyze(content)

	tests := []struct {
		name string
		pos  protocol.Position
	}{
		{"before literal", protocol.Position{Line: 0, Character: 1}},
		{"end is exclusive", protocol.Position{Line: 0, Character: 14}},
		{"other line", protocol.Position{Line: 3, Character: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h := hover(result, tt.pos); h != nil {
				t.Errorf("hover(%+v) = %+v, want nil", tt.pos, h)
			}
		})
	}

	if h := hover(nil, protocol.Position{}); h != nil {
		t.Error("hover(nil) should be nil")
	}
}

func TestExtractText_MultiLine(t *testing.T) {
	content := "abc\ndef\nghi"
	r := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 1},
		End:   protocol.Position{Line: 2, Character: 2},
	}
	if got := extractText(content, r); got != "bc\ndef\ngh" {
		t.Errorf("extractText() = %q, want %q", got, "bc\ndef\ngh")
	}

	if got := extractText(content, protocol.Range{Start: protocol.Position{Line: 9}}); got != "" {
		t.Errorf("extractText() past end = %q, want empty", got)
	}
}
