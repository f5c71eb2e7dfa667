// Package parse parses XML documents into IR nodes.
//
// # Usage
//
//	// Parse XML text
//	node, err := parse.Parse([]byte(`<r id="7"><x>1</x><x>2</x></r>`))
//	if err != nil {
//	    return err
//	}
//	// node is {"r": {"@id": "7", "x": ["1", "2"]}}
//
//	// Keep self-closing elements as null
//	node, err := parse.ParseString(`<r><a/></r>`, parse.KeepNull(true))
//	// node is {"r": {"a": null}}
//
// # Encoding
//
// The result is an object with a single key, the root element name.
// Attributes become "@name" keys holding strings, the direct text of an
// element is held under "#text", and child elements are keyed by their
// name. Repeated sibling elements are collected into an array in document
// order. An element with only text collapses to the text string. Text is
// never converted to numbers or booleans.
//
// Elements with no attributes, children or text are dropped unless
// KeepNull(true) is given: <a/> then parses as null and <a></a> as an
// empty object.
//
// When an element has child elements, its own text is discarded.
//
// # Related Packages
//
//   - github.com/openspeleo/xmldict/ir - IR representation
//   - github.com/openspeleo/xmldict/encode - Encode IR to XML
//   - github.com/openspeleo/xmldict/stream - XML events
package parse
