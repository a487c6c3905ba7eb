package chooser

import (
	"os"
	"strings"
)

// Filter decides which children of a directory are listed.
type Filter struct {
	ShowFiles bool
	// FileFormats are name suffixes, matched case-sensitively. No globs.
	FileFormats []string
}

func (f Filter) IsEmpty() bool {
	return len(f.FileFormats) == 0
}

// MatchesFileFormat reports whether name ends with one of the formats. An
// empty filter matches every name.
func (f Filter) MatchesFileFormat(name string) bool {
	if f.IsEmpty() {
		return true
	}
	for _, format := range f.FileFormats {
		if strings.HasSuffix(name, format) {
			return true
		}
	}
	return false
}

// IsVisible applies the listing rules to a stat-ed entry; readability is
// checked separately. Directories are always visible; regular files only when files are shown
// and the name matches.
func (f Filter) IsVisible(name string, info os.FileInfo) bool {
	if info.IsDir() {
		return true
	}
	if !f.ShowFiles || !info.Mode().IsRegular() {
		return false
	}
	return f.MatchesFileFormat(name)
}
