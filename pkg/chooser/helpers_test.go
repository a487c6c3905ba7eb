package chooser

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/filetug/filechooser/pkg/files/osfile"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testRoot = "/storage/emulated/0"

// lockedFs refuses to open the listed paths.
type lockedFs struct {
	afero.Fs
	locked map[string]bool
}

func (l lockedFs) Open(name string) (afero.File, error) {
	if l.locked[name] {
		return nil, os.ErrPermission
	}
	return l.Fs.Open(name)
}

// newTestFs creates the given paths under testRoot; names ending with "/"
// become directories.
func newTestFs(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(testRoot, 0o755))
	for _, p := range paths {
		full := testRoot + "/" + p
		if p[len(p)-1] == '/' {
			require.NoError(t, fsys.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, afero.WriteFile(fsys, full, []byte(p), 0o644))
	}
	return fsys
}

func newTestStore(t *testing.T, paths ...string) *osfile.Store {
	t.Helper()
	return osfile.NewStoreFs(newTestFs(t, paths...), testRoot)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingListener struct {
	paths []string
}

func (l *recordingListener) OnSelect(path string) {
	l.paths = append(l.paths, path)
}

func itemPaths(items []Item) []string {
	paths := make([]string, len(items))
	for i, item := range items {
		paths[i] = item.Path
	}
	return paths
}
