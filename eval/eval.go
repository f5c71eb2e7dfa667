package eval

import (
	"fmt"

	"github.com/openspeleo/xmldict/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DocVar names the variable bound to the tree.
const DocVar = "doc"

// Env holds extra variables visible to expressions.
type Env map[string]any

// Eval compiles and runs input with doc bound to DocVar and returns the
// result as a node.
func Eval(input string, doc *ir.Node, env Env) (*ir.Node, error) {
	val, err := run(input, doc, env)
	if err != nil {
		return nil, err
	}
	res, err := ir.FromAny(val)
	if err != nil {
		return nil, fmt.Errorf("could not translate result of %q: %w", input, err)
	}
	return res, nil
}

// Truth evaluates input like Eval and reports whether the result is
// truthy.
func Truth(input string, doc *ir.Node, env Env) (bool, error) {
	res, err := Eval(input, doc, env)
	if err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}

func run(input string, doc *ir.Node, env Env) (any, error) {
	vars := make(map[string]any, len(env)+1)
	for k, v := range env {
		vars[k] = v
	}
	vars[DocVar] = ir.ToAny(doc)
	opts := append(exprOpts(doc), expr.Env(vars))
	program, err := expr.Compile(input, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	val, err := vm.Run(program, vars)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	return val, nil
}
