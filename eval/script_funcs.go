package eval

import (
	"fmt"
	"os"

	"github.com/openspeleo/xmldict/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("text", func(params ...any) (any, error) {
			return text(params[0]), nil
		},
			new(func(any) string)),
		expr.Function("attr", func(params ...any) (any, error) {
			m, ok := params[0].(map[string]any)
			if !ok {
				return nil, nil
			}
			return m[ir.AttrKey(params[1].(string))], nil
		},
			new(func(any, string) any)),
		expr.Function("aslist", func(params ...any) (any, error) {
			switch x := params[0].(type) {
			case nil:
				return []any{}, nil
			case []any:
				return x, nil
			default:
				return []any{x}, nil
			}
		},
			new(func(any) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case map[string]any:
		return text(x[ir.TextKey])
	default:
		return fmt.Sprint(x)
	}
}
