package osfile

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/filetug/filechooser/pkg/files"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/spf13/afero"
)

// ExternalStorageEnv names the variable Android-like hosts use to publish the
// shared storage directory.
const ExternalStorageEnv = "EXTERNAL_STORAGE"

var osGetenv = os.Getenv
var diskPartitions = disk.PartitionsWithContext

var _ files.Store = (*Store)(nil)

type Store struct {
	fs        afero.Fs
	title     string
	root      string
	stateFunc func(ctx context.Context) files.StorageState
}

type Option func(s *Store)

func WithTitle(title string) Option {
	return func(s *Store) {
		s.title = title
	}
}

// WithStateFunc replaces storage state detection, e.g. to simulate an
// unmounted card.
func WithStateFunc(f func(ctx context.Context) files.StorageState) Option {
	return func(s *Store) {
		s.stateFunc = f
	}
}

// ExternalStorageDir returns $EXTERNAL_STORAGE when set, otherwise the user's
// home directory.
func ExternalStorageDir() string {
	if dir := osGetenv(ExternalStorageEnv); dir != "" {
		return filepath.Clean(dir)
	}
	return xdg.Home
}

// NewStore returns a store over the host filesystem rooted at root. An empty
// root means ExternalStorageDir().
func NewStore(root string, o ...Option) *Store {
	if root == "" {
		root = ExternalStorageDir()
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return NewStoreFs(afero.NewOsFs(), root, o...)
}

// NewStoreFs returns a store over any afero filesystem. The root must be
// absolute within fsys.
func NewStoreFs(fsys afero.Fs, root string, o ...Option) *Store {
	s := &Store{
		fs:   fsys,
		root: filepath.Clean(root),
	}
	for _, opt := range o {
		opt(s)
	}
	if s.title == "" {
		s.title = "💾" + filepath.Base(s.root)
	}
	return s
}

func (s *Store) RootTitle() string {
	return s.title
}

func (s *Store) RootPath() string {
	return s.root
}

func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(s.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]os.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (s *Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.Stat(name)
}

// CanRead reports whether name is readable. It never opens special files
// such as named pipes, which can block until a writer shows up.
func (s *Store) CanRead(ctx context.Context, name string) bool {
	if ctx.Err() != nil {
		return false
	}
	return canRead(s.fs, name)
}

func (s *Store) State(ctx context.Context) files.StorageState {
	if s.stateFunc != nil {
		return s.stateFunc(ctx)
	}
	return detectState(ctx, s.fs, s.root)
}

func detectState(ctx context.Context, fsys afero.Fs, root string) files.StorageState {
	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return files.StateRemoved
		}
		return files.StateUnknown
	}
	if !info.IsDir() || !canRead(fsys, root) {
		return files.StateUnmounted
	}
	switch fsys.(type) {
	case *afero.ReadOnlyFs:
		return files.StateMountedReadOnly
	case *afero.OsFs:
		if isReadOnlyMount(ctx, root) {
			return files.StateMountedReadOnly
		}
	}
	return files.StateMounted
}

// canRead uses access(2) on the host filesystem and falls back to opening
// regular files and directories on any other afero.Fs.
func canRead(fsys afero.Fs, name string) bool {
	if _, ok := fsys.(*afero.OsFs); ok {
		return accessRead(name)
	}
	info, err := fsys.Stat(name)
	if err != nil || !(info.IsDir() || info.Mode().IsRegular()) {
		return false
	}
	return canOpen(fsys, name)
}

func canOpen(fsys afero.Fs, name string) bool {
	f, err := fsys.Open(name)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// isReadOnlyMount looks up the innermost mount point containing root.
func isReadOnlyMount(ctx context.Context, root string) bool {
	partitions, err := diskPartitions(ctx, true)
	if err != nil {
		return false
	}
	var best *disk.PartitionStat
	for i := range partitions {
		p := &partitions[i]
		if !isWithin(root, p.Mountpoint) {
			continue
		}
		if best == nil || len(p.Mountpoint) > len(best.Mountpoint) {
			best = p
		}
	}
	if best == nil {
		return false
	}
	return slices.Contains(best.Opts, "ro")
}

func isWithin(path, dir string) bool {
	if dir == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
