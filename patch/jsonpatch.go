// Package patch applies RFC 6902 JSON patches to trees.
package patch

import (
	"fmt"

	"github.com/openspeleo/xmldict/debug"
	"github.com/openspeleo/xmldict/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch is a decoded list of patch operations.
type JSONPatch struct {
	ops jsonpatch.Patch
}

// DecodeJSONPatch decodes a patch given as a tree, for example one read
// from a JSON or YAML file.
func DecodeJSONPatch(node *ir.Node) (*JSONPatch, error) {
	if node == nil || node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: expected an array of operations", ErrBadPatch)
	}
	d, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPatch, err)
	}
	return &JSONPatch{ops: ops}, nil
}

// Len returns the number of operations.
func (p *JSONPatch) Len() int {
	return len(p.ops)
}

// Apply returns the patched copy of doc. Object keys come back sorted,
// since the patch is applied to decoded JSON objects.
func (p *JSONPatch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("jsonpatch with %d ops called on %s\n", len(p.ops), doc.Path())
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	jOut, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApply, err)
	}
	return ir.FromJSON(jOut)
}
