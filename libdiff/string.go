package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff renders the character differences between two texts with
// insertions and deletions highlighted for a terminal.
func TextDiff(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}

// TextDelta encodes the differences between two texts in the compact
// delta form, e.g. "=3\t-2\t+ing".
func TextDelta(from, to string) string {
	diffCfg := diffpatch.New()
	return diffCfg.DiffToDelta(diffCfg.DiffMain(from, to, false))
}
