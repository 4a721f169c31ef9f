package lsp

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/jsvensson/swatch/internal/color"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var DiagError = protocol.DiagnosticSeverityError

const diagnosticSource = "swatch"

var (
	// hexLiteral matches #RRGGBB and #RRGGBBAA not followed by further word characters.
	hexLiteral = regexp.MustCompile(`#([0-9A-Fa-f]{8}|[0-9A-Fa-f]{6})\b`)

	// funcLiteral matches rgb(...), rgba(...), hsl(...), hsla(...) and cmyk(...)
	// on a single line. The argument list is validated by the color parsers.
	funcLiteral = regexp.MustCompile(`(?i)\b(rgba|rgb|hsla|hsl|cmyk)\(([^()\n]*)\)`)

	argNoise = strings.NewReplacer(" ", "", "\t", "", "%", "")
)

// AnalysisResult holds everything produced by scanning a document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a parsed colour literal at a specific source position.
type ColorLocation struct {
	Range    protocol.Range
	Color    color.Color
	Notation color.Notation
}

// Analyze scans content for colour literals. Literals that parse are recorded
// in Colors; function literals whose arguments do not parse produce a
// diagnostic instead. All lines are scanned, errors do not stop the scan.
func Analyze(content string) *AnalysisResult {
	result := &AnalysisResult{}

	for i, line := range strings.Split(content, "\n") {
		lineNo := uint32(i)

		for _, m := range hexLiteral.FindAllStringSubmatchIndex(line, -1) {
			c, err := color.ParseHex(line[m[2]:m[3]])
			if err != nil {
				// The pattern only admits valid digits.
				continue
			}
			result.Colors = append(result.Colors, ColorLocation{
				Range:    lineRange(line, lineNo, m[0], m[1]),
				Color:    c,
				Notation: color.NotationHex,
			})
		}

		for _, m := range funcLiteral.FindAllStringSubmatchIndex(line, -1) {
			r := lineRange(line, lineNo, m[0], m[1])
			n, err := color.ParseNotation(line[m[2]:m[3]])
			if err != nil {
				continue
			}
			c, err := color.Parse(n, argNoise.Replace(line[m[4]:m[5]]))
			if err != nil {
				result.addError(r, "invalid "+n.Title()+" color: "+err.Error())
				continue
			}
			result.Colors = append(result.Colors, ColorLocation{Range: r, Color: c, Notation: n})
		}
	}

	return result
}

func (r *AnalysisResult) addError(rng protocol.Range, msg string) {
	sev := DiagError
	source := diagnosticSource
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &sev,
		Source:   &source,
		Message:  msg,
	})
}

// lineRange converts the byte span [start, end) of line to an LSP range,
// whose characters are counted in UTF-16 code units.
func lineRange(line string, lineNo uint32, start, end int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: lineNo, Character: utf16Len(line[:start])},
		End:   protocol.Position{Line: lineNo, Character: utf16Len(line[:end])},
	}
}

func utf16Len(s string) uint32 {
	var n uint32
	for _, r := range s {
		n += uint32(len(utf16.AppendRune(nil, r)))
	}
	return n
}

// byteOffset converts a UTF-16 character offset within line to a byte offset,
// clamped to the line length.
func byteOffset(line string, char uint32) int {
	var units uint32
	for i, r := range line {
		if units >= char {
			return i
		}
		units += uint32(len(utf16.AppendRune(nil, r)))
	}
	return len(line)
}
