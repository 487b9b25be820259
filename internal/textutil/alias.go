package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// AliasKey folds an alias to the form under which filesystems may compare
// it: NFC-normalized, then case-folded. Two aliases with the same key map to
// the same file on at least one common filesystem.
func AliasKey(alias string) string {
	return cases.Fold().String(norm.NFC.String(alias))
}
