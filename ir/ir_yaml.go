package ir

import (
	"fmt"
	"math/big"

	"github.com/goccy/go-yaml"
)

// ToYAML renders the node as a YAML document, keeping object key order.
func ToYAML(y *Node) ([]byte, error) {
	return yaml.Marshal(toYAMLValue(y))
}

func toYAMLValue(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: toYAMLValue(y.Values[i])}
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = toYAMLValue(v)
		}
		return res
	case NumberType:
		if y.Int64 == nil && y.Float64 == nil {
			if b, ok := new(big.Int).SetString(y.Number, 10); ok && b.IsUint64() {
				return b.Uint64()
			}
			return y.Number
		}
	}
	return ToAny(y)
}

// FromYAML decodes a single YAML document, keeping mapping key order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return FromAny(v)
}
