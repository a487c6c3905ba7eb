package chooser

import (
	"context"
	"log/slog"
	"slices"

	"github.com/filetug/filechooser/pkg/files"
	"github.com/pkg/errors"
)

// Builder collects the configuration of a dialog. Mode and listener are
// required; everything else has a default.
type Builder struct {
	cfg      Config
	listener Listener
	logger   *slog.Logger
}

// NewBuilder panics on an invalid mode or a nil listener: both are
// programming errors.
func NewBuilder(mode Mode, listener Listener) *Builder {
	return FromConfig(DefaultConfig(mode), listener)
}

// FromConfig starts a builder from an existing config, e.g. one restored
// from a saved arguments bundle. The listener is never persisted, so the
// caller supplies it again.
func FromConfig(cfg Config, listener Listener) *Builder {
	if !cfg.Mode.IsValid() {
		panic("invalid chooser mode: " + string(cfg.Mode))
	}
	if isNilListener(listener) {
		panic("chooser listener is required")
	}
	return &Builder{
		cfg:      cfg.Clone().withDefaultIcons(),
		listener: listener,
	}
}

// SetTitle sets the dialog title. Without a title the dialog has no title bar.
func (b *Builder) SetTitle(title string) *Builder {
	b.cfg.Title = title
	return b
}

// SetFileFormats limits listed files to names ending with one of formats.
// All files are listed when no formats are set: calling it with an empty
// list is the same as not calling it, so it never hides every file.
func (b *Builder) SetFileFormats(formats ...string) *Builder {
	b.cfg.FileFormats = slices.Clone(formats)
	return b
}

func (b *Builder) SetFileIcon(icon Icon) *Builder {
	b.cfg.FileIcon = iconOrDefault(icon, DefaultFileIcon)
	return b
}

func (b *Builder) SetDirectoryIcon(icon Icon) *Builder {
	b.cfg.DirectoryIcon = iconOrDefault(icon, DefaultDirectoryIcon)
	return b
}

// SetPreviousDirectoryButtonIcon sets the icon of the "go to parent" button.
func (b *Builder) SetPreviousDirectoryButtonIcon(icon Icon) *Builder {
	b.cfg.PreviousDirectoryIcon = iconOrDefault(icon, DefaultPreviousDirectoryIcon)
	return b
}

func (b *Builder) SetLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Config returns a snapshot of the configuration collected so far.
func (b *Builder) Config() Config {
	return b.cfg.Clone()
}

// Build returns a dialog over store. It fails with ErrStorageUnavailable
// unless the storage is mounted, read-write or read-only.
func (b *Builder) Build(ctx context.Context, store files.Store) (*Dialog, error) {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}
	state := store.State(ctx)
	if !state.IsReadable() {
		logger.Warn("storage is not available", "root", store.RootPath(), "state", state.String())
		return nil, errors.Wrapf(ErrStorageUnavailable, "storage %s is %s", store.RootPath(), state)
	}
	return newDialog(b.cfg.Clone(), b.listener, store, logger), nil
}

// Restore rebuilds a dialog from a persisted config.
func Restore(ctx context.Context, store files.Store, cfg Config, listener Listener) (*Dialog, error) {
	return FromConfig(cfg, listener).Build(ctx, store)
}
