package chooser

import (
	"path/filepath"
	"slices"
	"strings"
)

// Item is one entry of the current listing.
type Item struct {
	Path  string
	Icon  Icon
	IsDir bool
	Size  int64
}

func (i Item) Name() string {
	return filepath.Base(i.Path)
}

func (i Item) String() string {
	return i.Path
}

// CompareItems orders items by their absolute path, byte-wise and
// case-sensitive. Paths of one listing are unique, so the order is total.
func CompareItems(a, b Item) int {
	return strings.Compare(a.Path, b.Path)
}

func SortItems(items []Item) {
	slices.SortStableFunc(items, CompareItems)
}
