package lsp

import (
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDocumentStore_Update(t *testing.T) {
	store := NewDocumentStore()

	result := store.Open("test://file.css", "a { color: #FF0000 }")
	if len(result.Colors) != 1 {
		t.Fatalf("Open() found %d colors, want 1", len(result.Colors))
	}

	content, ok := store.Get("test://file.css")
	if !ok || content != "a { color: #FF0000 }" {
		t.Errorf("Get() = %q, %v", content, ok)
	}

	store.Update("test://file.css", "a { color: rgb(1,2,3); background: #000000 }")
	if got := store.Result("test://file.css"); got == nil || len(got.Colors) != 2 {
		t.Errorf("Result() after update = %+v, want 2 colors", got)
	}

	store.Close("test://file.css")
	if _, ok := store.Get("test://file.css"); ok {
		t.Error("document still present after Close")
	}
	if store.Result("test://file.css") != nil {
		t.Error("Result() should be nil after Close")
	}
}

func TestPublishDiagnostics(t *testing.T) {
	s := NewServer("test")

	var published []protocol.PublishDiagnosticsParams
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				t.Errorf("unexpected notification %q", method)
			}
			published = append(published, params.(protocol.PublishDiagnosticsParams))
		},
	}

	err := s.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///a.css", Text: "x = rgb(300,0,0)"},
	})
	if err != nil {
		t.Fatal(err)
	}

	err = s.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.css"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(published) != 2 {
		t.Fatalf("got %d notifications, want 2", len(published))
	}
	if len(published[0].Diagnostics) != 1 {
		t.Errorf("open published %d diagnostics, want 1", len(published[0].Diagnostics))
	}
	if published[1].Diagnostics == nil || len(published[1].Diagnostics) != 0 {
		t.Errorf("close published %+v, want empty list", published[1].Diagnostics)
	}
}
