// Package encode encodes IR nodes to XML documents.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "@id", Val: ir.FromString("7")},
//	    {Key: "x", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
//	})
//	err := encode.Encode(node, "r", os.Stdout)
//	// <?xml version="1.0" encoding="utf-8"?><r id="7"><x>1</x><x>2</x></r>
//
//	// Encode a parsed document, using its single key as the root name
//	err := encode.EncodeDocument(doc, os.Stdout, encode.EncodeIndent("  "))
//
// Object keys starting with "@" become attributes, "#text" becomes the
// element text, and other keys become child elements. An array value
// becomes repeated sibling elements. Null encodes as a self-closing
// element, and a string always encodes with an end tag, even when empty.
//
// View writes an indented, optionally colored outline of a node for
// terminals.
//
// # Related Packages
//
//   - github.com/openspeleo/xmldict/ir - IR representation
//   - github.com/openspeleo/xmldict/parse - Parse XML to IR
package encode
