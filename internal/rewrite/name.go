package rewrite

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultExtension is the file extension of Cot parity tests.
const DefaultExtension = ".cot"

// defaultCategories maps filename prefixes to the category word used in
// test labels. Tags without an entry pass through verbatim.
var defaultCategories = map[string]string{
	"expr": "expression",
	"cf":   "control flow",
	"fn":   "function",
	"ty":   "type",
	"arr":  "array",
	"mem":  "memory",
	"var":  "variable",
}

// namePattern matches the prefix_NNN_name filename convention.
var namePattern = regexp.MustCompile(`^([a-z]+)_\d+_(.+)$`)

// Labeler derives test labels from parity-test filenames.
type Labeler struct {
	categories map[string]string
	extension  string
}

// NewLabeler returns a Labeler whose category table is the built-in one
// extended by extra. Entries in extra win over the built-ins. An empty
// extension selects DefaultExtension.
func NewLabeler(extra map[string]string, extension string) *Labeler {
	categories := make(map[string]string, len(defaultCategories)+len(extra))
	for tag, word := range defaultCategories {
		categories[tag] = word
	}
	for tag, word := range extra {
		categories[tag] = word
	}
	if extension == "" {
		extension = DefaultExtension
	}
	return &Labeler{categories: categories, extension: extension}
}

// DeriveLabel converts a filename into a descriptive test label.
//
//	expr_001_add.cot  -> "expression: add"
//	fn_020_nth_fib.cot -> "function: nth fib"
//
// Filenames that do not follow the prefix_NNN_name convention keep
// their base name with underscores turned into spaces.
func (l *Labeler) DeriveLabel(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), l.extension)

	m := namePattern.FindStringSubmatch(base)
	if m == nil {
		return strings.ReplaceAll(base, "_", " ")
	}

	tag, name := m[1], m[2]
	category, ok := l.categories[tag]
	if !ok {
		category = tag
	}
	return category + ": " + strings.ReplaceAll(name, "_", " ")
}

var defaultLabeler = NewLabeler(nil, "")

// DeriveLabel derives a label using the built-in category table.
func DeriveLabel(filename string) string {
	return defaultLabeler.DeriveLabel(filename)
}
