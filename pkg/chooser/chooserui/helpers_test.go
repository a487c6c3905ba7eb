package chooserui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/filetug/filechooser/pkg/chooser"
	"github.com/filetug/filechooser/pkg/files/osfile"
	"github.com/rivo/tview"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testRoot = "/sdcard"

type selections struct {
	paths []string
}

func (s *selections) OnSelect(path string) {
	s.paths = append(s.paths, path)
}

type testView struct {
	*View
	selected *selections
	stopped  int
	done     int
	focused  []string
}

// newTestView lists testRoot holding paths; names ending with "/" are
// directories.
func newTestView(t *testing.T, mode chooser.Mode, setup func(b *chooser.Builder), paths ...string) *testView {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(testRoot, 0o755))
	for _, p := range paths {
		full := testRoot + "/" + p
		if strings.HasSuffix(p, "/") {
			require.NoError(t, fsys.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, afero.WriteFile(fsys, full, []byte(p), 0o644))
	}
	store := osfile.NewStoreFs(fsys, testRoot)

	tv := &testView{selected: &selections{}}
	b := chooser.NewBuilder(mode, tv.selected).
		SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if setup != nil {
		setup(b)
	}
	ctx := context.Background()
	dialog, err := b.Build(ctx, store)
	require.NoError(t, err)

	var view *View
	app := NewApp(nil,
		WithStop(func() { tv.stopped++ }),
		WithSetFocus(func(p tview.Primitive) {
			tv.focused = append(tv.focused, view.focusName(p))
		}),
	)
	view = NewView(ctx, app, dialog)
	tv.View = view
	return tv
}

func (v *View) focusName(p tview.Primitive) string {
	switch p {
	case v.table:
		return "table"
	case v.parentBtn:
		return "parent"
	case v.selectDir:
		return "select"
	default:
		return "?"
	}
}

func (v *View) rowTexts() []string {
	var texts []string
	for row := 0; row < v.table.GetRowCount(); row++ {
		texts = append(texts, v.table.GetCell(row, nameColIndex).Text)
	}
	return texts
}
