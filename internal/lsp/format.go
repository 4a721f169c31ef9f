package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/swatch/internal/config"
)

// formatEdits returns a single edit replacing the whole document with its
// canonical form, or nil if the document is already formatted or does not parse.
func formatEdits(uri, content string) []protocol.TextEdit {
	formatted, err := config.Format([]byte(content), uri)
	if err != nil || string(formatted) == content {
		return nil
	}

	lines := strings.Split(content, "\n")
	last := lines[len(lines)-1]
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(len(lines) - 1), Character: utf16Len(last)},
		},
		NewText: string(formatted),
	}}
}

// textDocumentFormatting handles textDocument/formatting requests for HCL
// config files. Other documents are left alone.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)
	if !strings.HasSuffix(uri, ".hcl") {
		return nil, nil
	}
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return formatEdits(uri, content), nil
}
