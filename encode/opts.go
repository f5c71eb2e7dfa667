package encode

type EncodeOption func(*EncState)

// EncodeIndent indents nested elements with one copy of s per level.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// EncodeDeclaration selects whether the XML declaration is written. It
// is written by default.
func EncodeDeclaration(v bool) EncodeOption {
	return func(es *EncState) { es.noDecl = !v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
