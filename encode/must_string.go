package encode

import (
	"github.com/openspeleo/xmldict/ir"
)

func MustString(node *ir.Node, rootName string, opts ...EncodeOption) string {
	s, err := EncodeString(node, rootName, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
