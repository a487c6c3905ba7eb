package chooser

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/filetug/filechooser/pkg/files"
)

// Dialog is the chooser controller. It owns the current directory and the
// listed items; a renderer forwards user actions to it.
//
// A Dialog is not safe for concurrent use. Call it from the UI event loop only.
type Dialog struct {
	cfg      Config
	listener Listener
	store    files.Store
	logger   *slog.Logger

	currentDir string
	items      []Item
	dismissed  bool

	changedFunc func()
	dismissFunc func()
}

func newDialog(cfg Config, listener Listener, store files.Store, logger *slog.Logger) *Dialog {
	return &Dialog{
		cfg:        cfg,
		listener:   listener,
		store:      store,
		logger:     logger,
		currentDir: store.RootPath(),
	}
}

// SetChangedFunc sets a handler called after every reload of the listing.
func (d *Dialog) SetChangedFunc(f func()) *Dialog {
	d.changedFunc = f
	return d
}

// SetDismissFunc sets a handler called once when the dialog is dismissed,
// after the listener if there was a selection.
func (d *Dialog) SetDismissFunc(f func()) *Dialog {
	d.dismissFunc = f
	return d
}

// Config returns a copy of the dialog configuration.
func (d *Dialog) Config() Config {
	return d.cfg.Clone()
}

func (d *Dialog) Title() string {
	return d.cfg.Title
}

// HasTitle is false when the dialog should be drawn without a title bar.
func (d *Dialog) HasTitle() bool {
	return d.cfg.HasTitle()
}

func (d *Dialog) PreviousDirectoryIcon() Icon {
	return d.cfg.PreviousDirectoryIcon
}

// ShowsSelectDirectory tells whether the "select this directory" control is
// part of the dialog.
func (d *Dialog) ShowsSelectDirectory() bool {
	return d.cfg.Mode == DirectoryChooser
}

func (d *Dialog) Store() files.Store {
	return d.store
}

func (d *Dialog) CurrentDir() string {
	return d.currentDir
}

// CurrentDirName is the last element of the current directory path.
func (d *Dialog) CurrentDirName() string {
	return files.NewDirContext(d.store, d.currentDir).Name()
}

// IsAtRoot reports whether the current directory is the storage root.
func (d *Dialog) IsAtRoot() bool {
	return filepath.Clean(d.currentDir) == filepath.Clean(d.store.RootPath())
}

// Items returns a copy of the current listing.
func (d *Dialog) Items() []Item {
	return slices.Clone(d.items)
}

func (d *Dialog) Dismissed() bool {
	return d.dismissed
}

// Show lists the storage root. It is called on first display and again
// whenever the dialog is recreated.
func (d *Dialog) Show(ctx context.Context) {
	if d.dismissed {
		return
	}
	d.loadItems(ctx, d.store.RootPath())
}

// SelectItem opens a directory item or, in file mode, picks a file item.
func (d *Dialog) SelectItem(ctx context.Context, item Item) {
	if d.dismissed {
		return
	}
	if item.IsDir {
		d.loadItems(ctx, item.Path)
		return
	}
	if d.cfg.Mode != FileChooser {
		d.logger.Debug("ignoring file selection in directory mode", "path", item.Path)
		return
	}
	d.finish(item.Path)
}

// GoToParent lists the parent of the current directory. It does nothing at
// the storage root or at a filesystem root.
func (d *Dialog) GoToParent(ctx context.Context) {
	if d.dismissed {
		return
	}
	if d.IsAtRoot() {
		d.logger.Debug("already at storage root", "dir", d.currentDir)
		return
	}
	parent, ok := files.NewDirContext(d.store, d.currentDir).Parent()
	if !ok {
		return
	}
	d.loadItems(ctx, parent)
}

// SelectDirectory picks the current directory. Only directory mode has this
// action; in file mode it does nothing.
func (d *Dialog) SelectDirectory() {
	if d.dismissed || d.cfg.Mode != DirectoryChooser {
		return
	}
	d.finish(d.currentDir)
}

// Cancel dismisses the dialog without a selection.
func (d *Dialog) Cancel() {
	if d.dismissed {
		return
	}
	d.logger.Debug("chooser cancelled", "dir", d.currentDir)
	d.dismiss()
}

func (d *Dialog) finish(path string) {
	d.logger.Info("path selected", "path", path, "mode", d.cfg.Mode.String())
	d.dismissed = true
	d.listener.OnSelect(path)
	d.dismiss()
}

func (d *Dialog) dismiss() {
	d.dismissed = true
	if d.dismissFunc != nil {
		d.dismissFunc()
	}
}

func (d *Dialog) loadItems(ctx context.Context, dir string) {
	d.currentDir = dir
	items, err := ListItems(ctx, d.store, dir, d.cfg)
	if err != nil {
		d.logger.Warn("failed to list directory", "dir", dir, "error", err)
		items = nil
	}
	d.items = items
	d.logger.Debug("directory listed", "dir", dir, "items", len(items))
	if d.changedFunc != nil {
		d.changedFunc()
	}
}
