package libdiff

// Diff records are objects with a single one of these keys. XML names
// cannot start with '!', so the keys never clash with element names.
const (
	DeleteKey    = "!delete"
	InsertKey    = "!insert"
	ReplaceKey   = "!replace"
	ArrayDiffKey = "!arraydiff"

	FromKey = "from"
	ToKey   = "to"
)
