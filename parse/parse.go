package parse

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// ParseConfig parses the HCL config data and decodes it into a new instance of T
func ParseConfig[T Config](data *Data) (T, error) {
	target := instanceOf[T]()

	body, err := ParseBody(data)
	if err != nil {
		return target, err
	}
	if err := DecodeBody(body, target); err != nil {
		return target, err
	}
	return target, nil
}

// ParseBody parses raw HCL bytes and returns the file body
func ParseBody(data *Data) (hcl.Body, error) {
	file, diags := hclsyntax.ParseConfig(data.Hcl, data.Filename, data.Pos)
	if diags.HasErrors() {
		slog.Warn("failed to parse config", "filename", data.Filename, "diags", diags)
		return nil, DiagsToError("failed to parse config", diags)
	}
	return file.Body, nil
}

// DecodeBody decodes an HCL body into the target config and validates it
func DecodeBody(body hcl.Body, target Config) error {
	// empty eval context - config bodies are literal values only
	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value),
		Functions: make(map[string]function.Function),
	}

	diags := gohcl.DecodeBody(body, evalCtx, target)
	if diags.HasErrors() {
		return DiagsToError(fmt.Sprintf("failed to decode '%s' config", target.Identifier()), diags)
	}

	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid '%s' config: %w", target.Identifier(), err)
	}
	return nil
}

// DiagsToError converts HCL diagnostics into a single error
func DiagsToError(prefix string, diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}
	errs := make([]error, 0, len(diags))
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		msg := diag.Summary
		if diag.Detail != "" {
			msg = fmt.Sprintf("%s: %s", diag.Summary, diag.Detail)
		}
		errs = append(errs, errors.New(msg))
	}
	return fmt.Errorf("%s: %w", prefix, errors.Join(errs...))
}

// instanceOf returns a new instance of T - if T is a pointer type, the
// pointed-to struct is allocated
func instanceOf[T any]() T {
	var empty T
	t := reflect.TypeOf(empty)
	if t != nil && t.Kind() == reflect.Ptr {
		return reflect.New(t.Elem()).Interface().(T)
	}
	return empty
}
