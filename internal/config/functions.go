package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/swatch/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// MakeNotationFunc creates an HCL function that converts a code in notation n
// to its canonical 8-digit hex form.
// Usage: hsl("210,50,40") or rgba("12,34,56,0.5")
func MakeNotationFunc(n color.Notation) function.Function {
	return function.New(&function.Spec{
		Description: "Converts a " + n.Title() + " color code to canonical hex",
		Params: []function.Parameter{
			{
				Name: "code",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(n, args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

// MakeRandomFunc creates an HCL function returning a random opaque colour.
// The value is drawn once, when the config file is evaluated.
func MakeRandomFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns a random opaque color as canonical hex",
		Params:      []function.Parameter{},
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(color.Random().Hex()), nil
		},
	})
}

// BuildEvalContext creates the HCL evaluation context for config files: one
// conversion function per notation plus random().
func BuildEvalContext() *hcl.EvalContext {
	funcs := make(map[string]function.Function, len(color.Notations)+1)
	for _, n := range color.Notations {
		funcs[string(n)] = MakeNotationFunc(n)
	}
	funcs["random"] = MakeRandomFunc()
	return &hcl.EvalContext{Functions: funcs}
}
