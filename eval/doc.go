// Package eval evaluates expr-lang expressions against a tree.
//
// The tree is bound to the variable doc in native form (see ir.ToAny), so
// an element's attributes and text are reached with doc.Survey["@name"] or
// doc.Survey["#text"]. A few helper functions smooth over the shape of
// parsed XML:
//
//   - getpath(p) returns the value at a path such as $.Survey.Shot[0]
//   - text(v) returns the text of an element
//   - attr(v, name) returns an attribute of an element
//   - aslist(v) returns v as a list, since a single child is not an array
//   - getenv(name) reads an environment variable
package eval
