package chooser

import (
	"context"

	"github.com/filetug/filechooser/pkg/files"
)

// ListItems returns the readable children of dir that cfg lets through,
// sorted with CompareItems. Entries that can not be read or stat-ed are
// skipped silently; only a failure to read dir itself is returned.
func ListItems(ctx context.Context, store files.Store, dir string, cfg Config) ([]Item, error) {
	dc := files.NewDirContext(store, dir)
	if err := dc.Load(ctx); err != nil {
		return nil, err
	}
	filter := cfg.Filter()
	children := dc.Children()
	items := make([]Item, 0, len(children))
	for _, child := range children {
		fullName := child.FullName()
		info, err := store.Stat(ctx, fullName)
		if err != nil {
			continue
		}
		if !filter.IsVisible(child.Name(), info) {
			continue
		}
		if !store.CanRead(ctx, fullName) {
			continue
		}
		item := Item{Path: fullName}
		if info.IsDir() {
			item.IsDir = true
			item.Icon = cfg.DirectoryIcon
		} else {
			item.Icon = cfg.FileIcon
			item.Size = info.Size()
		}
		items = append(items, item)
	}
	SortItems(items)
	return items, nil
}
