package config

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	multipleBlankLines        = regexp.MustCompile(`\n{3,}`)
	blankLineAfterOpenBrace   = regexp.MustCompile(`\{\n\s*\n`)
	blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Format returns config source in canonical HCL style with runs of blank lines
// collapsed. Unlike hclwrite.Format on its own, it refuses source that does not
// parse, so a broken file is never rewritten.
func Format(src []byte, filename string) ([]byte, error) {
	if _, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1}); diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	out := hclwrite.Format(src)
	out = multipleBlankLines.ReplaceAll(out, []byte("\n\n"))
	out = blankLineAfterOpenBrace.ReplaceAll(out, []byte("{\n"))
	out = blankLineBeforeCloseBrace.ReplaceAll(out, []byte("\n${1}"))
	return out, nil
}
