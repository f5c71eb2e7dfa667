// Package format names the document formats a tree can be read from and
// written to: XML, JSON and YAML.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f, ok := format.FromPath("cave.tml") // XMLFormat, true
//
// # Related Packages
//
//   - github.com/openspeleo/xmldict/parse - Parse XML to IR
//   - github.com/openspeleo/xmldict/encode - Encode IR to XML
package format
