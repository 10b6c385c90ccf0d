package presetfile

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"honnef.co/go/easing"
)

type hclFile struct {
	Presets []hclPreset `hcl:"preset,block"`
}

type hclPreset struct {
	Name        string    `hcl:"name,label"`
	Category    *string   `hcl:"category,optional"`
	Value       *string   `hcl:"value,optional"`
	Coordinates []float64 `hcl:"coordinates,optional"`
}

// ParseHCL parses an HCL preset document made of labeled preset blocks.
// Expressions may call css(text), which parses CSS timing-function text, and
// cubic_bezier(x1, y1, x2, y2).
func ParseHCL(filename string, data []byte, base *easing.Library) (*easing.Library, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, newDiagnosticsError("failed to parse HCL", diags)
	}

	evalCtx := &hcl.EvalContext{
		Functions: map[string]function.Function{
			"css":          cssFunc(resolver(base)),
			"cubic_bezier": cubicBezierFunc,
		},
	}
	var f hclFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &f)
	if diags.HasErrors() {
		return nil, newDiagnosticsError("failed to decode HCL body", diags)
	}

	entries := make([]entry, len(f.Presets))
	for i, p := range f.Presets {
		entries[i] = entry{
			Name:        p.Name,
			Value:       p.Value,
			Coordinates: p.Coordinates,
		}
		if p.Category != nil {
			entries[i].Category = *p.Category
		}
	}
	return build(filename, entries, base)
}

// diagnosticsError reports HCL error diagnostics. If one of them is caused by
// a failing function call, it unwraps to the error of that call, so that
// errors from css() match the ones from a value attribute.
type diagnosticsError struct {
	msg   string
	diags hcl.Diagnostics
	err   error
}

func newDiagnosticsError(msg string, diags hcl.Diagnostics) error {
	e := &diagnosticsError{msg: msg, diags: diags}
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if extra, ok := hcl.DiagnosticExtra[hclsyntax.FunctionCallDiagExtra](diag); ok && extra.FunctionCallError() != nil {
			e.err = extra.FunctionCallError()
			break
		}
	}
	return e
}

func (e *diagnosticsError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.diags.Error())
}

func (e *diagnosticsError) Unwrap() error { return e.err }

var coordinatesType = cty.List(cty.Number)

func coordinatesVal(c easing.Coordinates) cty.Value {
	vals := make([]cty.Value, len(c))
	for i, v := range c {
		vals[i] = cty.NumberFloatVal(v)
	}
	return cty.ListVal(vals)
}

func cssFunc(lib *easing.Library) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{
				Name: "value",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(coordinatesType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := lib.Parse(args[0].AsString())
			if err != nil {
				return cty.UnknownVal(retType), err
			}
			return coordinatesVal(c), nil
		},
	})
}

var cubicBezierFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "x1", Type: cty.Number},
		{Name: "y1", Type: cty.Number},
		{Name: "x2", Type: cty.Number},
		{Name: "y2", Type: cty.Number},
	},
	Type: function.StaticReturnType(coordinatesType),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		var c easing.Coordinates
		for i, arg := range args {
			// Inexact conversions round to the nearest float64, like numbers in
			// CSS text do. Only overflow is an error.
			v, _ := arg.AsBigFloat().Float64()
			if math.IsInf(v, 0) {
				return cty.UnknownVal(retType), function.NewArgErrorf(i, "%s is out of range", arg.AsBigFloat().Text('g', 6))
			}
			c[i] = v
		}
		return coordinatesVal(c), nil
	},
})
