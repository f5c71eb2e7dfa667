// Package ir provides the value tree used as the in-memory form of XML
// documents.
//
// # Overview
//
// A Node is the same shape a JSON parser produces: null, boolean, number,
// string, ordered array, or object. Objects keep their keys in insertion
// order, which is what lets a parsed document be written back with its
// children in the same order.
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Fields are
// StringType nodes and each key occurs once.
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback for integers that do not fit an int64
//
// # XML Encoding Convention
//
// On top of the plain tree, XML structure is encoded as:
//
//   - a key starting with AttrPrefix ("@") is an attribute, its value a string
//   - the key TextKey ("#text") is the element's text content
//   - any other key is a child element; an array value means repeated
//     sibling elements with that name
//   - a document is a one-key object {rootName: content}
//
// Repeated siblings are merged with InsertOrPromote.
//
// # Interoperability
//
// ToAny and FromAny convert to and from native Go values (map[string]any,
// []any and scalars). MarshalJSON/FromJSON and ToYAML/FromYAML convert to
// text while keeping object key order.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
package ir
