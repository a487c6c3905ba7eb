package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/filetug/filechooser/pkg/chooser"
	"github.com/filetug/filechooser/pkg/chooser/chooserui"
	"github.com/filetug/filechooser/pkg/files"
	"github.com/filetug/filechooser/pkg/files/osfile"
	"github.com/filetug/filechooser/pkg/fsutils"
	"github.com/pkg/errors"
	"github.com/rivo/tview"
)

const (
	modalWidth  = 72
	modalHeight = 24
)

var errCancelled = errors.New("nothing was chosen")

var newStore = func(root string) files.Store {
	return osfile.NewStore(root)
}

var newApp = func() chooserui.App {
	return chooserui.NewApp(tview.NewApplication())
}

var newView = chooserui.NewView

type buildFunc func(ctx context.Context, store files.Store, listener chooser.Listener) (*chooser.Dialog, error)

// runChooser shows the dialog built by build and prints the chosen path.
func runChooser(ctx context.Context, cli *CLI, build buildFunc) error {
	logger, closeLog := createTUILogger(cli.LogLevel)
	defer closeLog()
	previous := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(previous)

	store := newStore(fsutils.ExpandHome(cli.Root))
	var chosen string
	listener := chooser.ListenerFunc(func(path string) {
		chosen = path
	})
	dialog, err := build(ctx, store, listener)
	if err != nil {
		return err
	}

	app := newApp()
	app.EnableMouse(true)
	view := newView(ctx, app, dialog)
	app.SetRoot(chooserui.Modal(view, modalWidth, modalHeight), true)
	if err = app.Run(); err != nil {
		return errors.Wrap(err, "chooser UI failed")
	}
	if chosen == "" {
		if view.Dialog().Dismissed() {
			logger.Info("chooser closed without a selection")
		} else {
			logger.Warn("chooser UI stopped before the dialog was dismissed", "dir", view.Dialog().CurrentDir())
		}
		return errCancelled
	}
	_, err = fmt.Fprintln(stdout, chosen)
	return errors.WithStack(err)
}
