package table

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// placeholderPrefix is the prefix spreadsheet tools give unlabeled columns,
// normalized to lowercase. Columns whose canonical name carries it hold no
// semantic content and are dropped during schema normalization.
const placeholderPrefix = "unnamed"

var (
	// NFKD splits accented characters into base letter + combining mark;
	// removing marks (Mn) leaves the plain ASCII-range letter.
	accentStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^a-z0-9_]`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// CleanColumnName converts a raw header string into its canonical column
// name: lowercase ASCII alphanumerics and underscores, with no
// leading/trailing/duplicate underscores. Pure and idempotent: the same
// input always yields the same output, and normalizing a canonical name
// returns it unchanged.
func CleanColumnName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if folded, _, err := transform.String(accentStripper, name); err == nil {
		name = folded
	}
	name = whitespaceRun.ReplaceAllString(name, "_")
	name = invalidChars.ReplaceAllString(name, "")
	name = underscoreRun.ReplaceAllString(name, "_")
	return strings.Trim(name, "_")
}

// NormalizeSchema renames every column to its canonical name and drops
// placeholder columns (canonical name empty or starting with the spreadsheet
// placeholder prefix). Two raw names collapsing to one canonical name is an
// error: silently keeping either column would hide data loss.
func NormalizeSchema(t *Table) error {
	t.Drop(func(name string) bool {
		canonical := CleanColumnName(name)
		return canonical == "" || strings.HasPrefix(canonical, placeholderPrefix)
	})
	return t.Rename(CleanColumnName)
}
