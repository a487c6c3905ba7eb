package files

import (
	"context"
	"os"
)

// Store is the filesystem a chooser browses. Paths passed in and returned are
// absolute and use the host path separator.
type Store interface {
	RootTitle() string
	RootPath() string
	State(ctx context.Context) StorageState
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	// Stat follows symlinks.
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	CanRead(ctx context.Context, name string) bool
}

// StorageState mirrors the mount states a removable storage can be in.
type StorageState string

const (
	StateMounted         StorageState = "mounted"
	StateMountedReadOnly StorageState = "mounted_ro"
	StateUnmounted       StorageState = "unmounted"
	StateRemoved         StorageState = "removed"
	StateUnknown         StorageState = "unknown"
)

// IsReadable reports whether entries can be listed in this state.
func (s StorageState) IsReadable() bool {
	return s == StateMounted || s == StateMountedReadOnly
}

func (s StorageState) String() string {
	if s == "" {
		return string(StateUnknown)
	}
	return string(s)
}
