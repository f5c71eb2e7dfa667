package ir

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

const (
	// AttrPrefix marks an object key as an XML attribute.
	AttrPrefix = "@"
	// TextKey holds the direct text content of an element.
	TextKey = "#text"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumberString builds a number node from its textual form. Integers
// that fit in an int64 are stored as Int64; other integers keep their
// text in Number so no precision is lost; anything else must parse as a
// float64.
func FromNumberString(v string) (*Node, error) {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i), nil
	}
	if isIntegerText(v) {
		return &Node{Type: NumberType, Number: v}, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, ErrBadNumber
	}
	return FromFloat(f), nil
}

func isIntegerText(v string) bool {
	v = strings.TrimPrefix(v, "-")
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object node.
func Object() *Node {
	return &Node{
		Type:   ObjectType,
		Fields: []*Node{},
		Values: []*Node{},
	}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object from a Go map. Go maps are unordered, so keys
// are sorted.
func FromMap(yMap map[string]*Node) *Node {
	res := Object()
	keys := slices.Sorted(maps.Keys(yMap))
	for _, key := range keys {
		res.appendField(key, yMap[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs. A repeated key
// replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	if i := y.index(field); i >= 0 {
		return y.Values[i]
	}
	return nil
}

// Len returns the number of entries of an object or array, and 0 otherwise.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	}
	return 0
}

// Keys returns the object keys in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) index(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

func (y *Node) appendField(key string, v *Node) {
	i := len(y.Values)
	k := FromString(key)
	k.Parent = y
	k.ParentIndex = i
	k.ParentField = key
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = key
	y.Fields = append(y.Fields, k)
	y.Values = append(y.Values, v)
}

// Set inserts v under key, or replaces the existing value keeping its
// position. y must be an object.
func (y *Node) Set(key string, v *Node) {
	i := y.index(key)
	if i < 0 {
		y.appendField(key, v)
		return
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = key
	y.Values[i] = v
}

// Append adds v at the end of the array y.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
}

// InsertOrPromote merges v into the object y under key: an absent key is
// inserted, a key holding an array gets v appended, and a key holding any
// other value is promoted to the array [existing, v] at the same position.
func (y *Node) InsertOrPromote(key string, v *Node) {
	i := y.index(key)
	if i < 0 {
		y.appendField(key, v)
		return
	}
	existing := y.Values[i]
	if existing.Type == ArrayType {
		existing.Append(v)
		return
	}
	y.Set(key, FromSlice([]*Node{existing, v}))
}

// Delete removes key from the object y, reporting whether it was present.
func (y *Node) Delete(key string) bool {
	i := y.index(key)
	if i < 0 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Fields[j].ParentIndex = j
		y.Values[j].ParentIndex = j
	}
	return true
}

// IsAttrKey reports whether key names an XML attribute.
func IsAttrKey(key string) bool {
	return strings.HasPrefix(key, AttrPrefix)
}

// AttrKey returns the object key for the attribute name.
func AttrKey(name string) string {
	return AttrPrefix + name
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// NumberText renders a number node: integers without a fractional part,
// floats in the shortest form that round trips.
func (y *Node) NumberText() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return formatFloat(*y.Float64)
	default:
		return y.Number
	}
}

// formatFloat uses the encoding/json rule: plain decimal notation unless
// the magnitude is tiny or huge.
func formatFloat(f float64) string {
	abs := f
	if abs < 0 {
		abs = -abs
	}
	fmtByte := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtByte = 'e'
	}
	s := strconv.FormatFloat(f, fmtByte, -1, 64)
	if fmtByte == 'e' {
		// clean up e-09 to e-9
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}
