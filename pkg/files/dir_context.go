package files

import (
	"context"
	"path/filepath"
	"slices"
)

// DirContext is a directory of a store together with its raw children as
// they were read the last time.
type DirContext struct {
	store    Store
	path     string
	children []EntryWithDirPath
}

func NewDirContext(store Store, path string) *DirContext {
	return &DirContext{
		store: store,
		path:  path,
	}
}

func (c *DirContext) Store() Store {
	return c.store
}

func (c *DirContext) Path() string {
	return c.path
}

// Name returns the last element of the path, or the path itself for a
// filesystem root.
func (c *DirContext) Name() string {
	if c.path == "" {
		return ""
	}
	name := filepath.Base(c.path)
	if name == string(filepath.Separator) || name == "." {
		return c.path
	}
	return name
}

// Parent returns the parent directory and false when the path is a
// filesystem root.
func (c *DirContext) Parent() (string, bool) {
	if c.path == "" {
		return "", false
	}
	clean := filepath.Clean(c.path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return "", false
	}
	return parent, true
}

// Load reads the directory children from the store.
func (c *DirContext) Load(ctx context.Context) error {
	entries, err := c.store.ReadDir(ctx, c.path)
	if err != nil {
		c.children = nil
		return err
	}
	children := make([]EntryWithDirPath, len(entries))
	for i, entry := range entries {
		children[i] = NewEntryWithDirPath(entry, c.path)
	}
	c.children = children
	return nil
}

// Children returns a copy of the entries read by the last Load.
func (c *DirContext) Children() []EntryWithDirPath {
	if c.children == nil {
		return nil
	}
	return slices.Clone(c.children)
}

func (c *DirContext) String() string {
	return c.path
}
