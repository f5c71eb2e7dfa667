package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/goccy/go-yaml"
)

// ToAny converts the node to native Go values: nil, bool, int64, float64,
// json.Number (integers beyond int64), string, []any and map[string]any.
// Go maps do not keep key order; use MarshalJSON or ToYAML when order
// matters.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		default:
			return json.Number(y.Number)
		}
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts native Go values to a node. Maps with string keys are
// sorted by key; yaml.MapSlice keeps its order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumberString(x.String())
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := FromSlice(nil)
		for _, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case yaml.MapSlice:
		res := Object()
		for _, item := range x {
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(keyString(item.Key), n)
		}
		return res, nil
	case map[any]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[keyString(k)] = n
		}
		return FromMap(m), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		res := FromSlice(nil)
		for i := 0; i < rv.Len(); i++ {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

func fromUint(u uint64) *Node {
	if u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	return &Node{Type: NumberType, Number: strconv.FormatUint(u, 10)}
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	}
	return fmt.Sprint(k)
}
