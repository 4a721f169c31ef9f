package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/swatch/internal/color"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)

	if startLine >= len(lines) {
		return ""
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	if startLine == endLine {
		line := lines[startLine]
		start := byteOffset(line, r.Start.Character)
		end := byteOffset(line, r.End.Character)
		if end < start {
			return ""
		}
		return line[start:end]
	}

	parts := []string{lines[startLine][byteOffset(lines[startLine], r.Start.Character):]}
	parts = append(parts, lines[startLine+1:endLine]...)
	parts = append(parts, lines[endLine][:byteOffset(lines[endLine], r.End.Character)])
	return strings.Join(parts, "\n")
}

// hoverMarkdown lists c in every notation, e.g.
// "**#EB6F92**" followed by "`rgb(235,111,146)` · `hsl(343,76,68)` · ...".
func hoverMarkdown(c color.Color) string {
	codes := make([]string, 0, len(color.Notations)-1)
	for _, n := range color.Notations[1:] {
		codes = append(codes, "`"+c.CSS(n)+"`")
	}
	return fmt.Sprintf("**%s**\n\n%s", c.CSS(color.NotationHex), strings.Join(codes, " · "))
}

// hover produces a Hover response for the given cursor position, or nil if
// the cursor is not on a colour literal.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: hoverMarkdown(cl.Color),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return hover(s.docs.Result(string(params.TextDocument.URI)), params.Position), nil
}
