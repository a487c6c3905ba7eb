package main

import (
	"context"
	"log/slog"

	"github.com/filetug/filechooser/pkg/chooser"
	"github.com/filetug/filechooser/pkg/chooser/chstate"
	"github.com/filetug/filechooser/pkg/files"
	"github.com/pkg/errors"
)

// PickCmd shows a new chooser.
type PickCmd struct {
	Mode       string   `short:"m" default:"file" help:"What to choose: file or directory."`
	Title      string   `short:"t" help:"Dialog title. No title bar when empty."`
	Format     []string `short:"f" help:"File name suffix to show, e.g. .pdf. Repeatable."`
	FileIcon   string   `help:"Icon of file entries."`
	DirIcon    string   `help:"Icon of directory entries."`
	ParentIcon string   `help:"Icon of the go-to-parent button."`
	SaveArgs   bool     `help:"Save the arguments for the resume command."`
}

// Config turns the flags into chooser arguments.
func (c *PickCmd) Config() (chooser.Config, error) {
	mode, err := chooser.ParseMode(c.Mode)
	if err != nil {
		return chooser.Config{}, err
	}
	b := chooser.NewBuilder(mode, chooser.ListenerFunc(func(string) {})).
		SetTitle(c.Title).
		SetFileIcon(chooser.Icon(c.FileIcon)).
		SetDirectoryIcon(chooser.Icon(c.DirIcon)).
		SetPreviousDirectoryButtonIcon(chooser.Icon(c.ParentIcon))
	if len(c.Format) > 0 {
		b.SetFileFormats(c.Format...)
	}
	return b.Config(), nil
}

func (c *PickCmd) Run(ctx context.Context, cli *CLI) error {
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	if c.SaveArgs {
		if err = chstate.Save(cfg); err != nil {
			return errors.Wrap(err, "failed to save arguments")
		}
	}
	return runChooser(ctx, cli, func(ctx context.Context, store files.Store, listener chooser.Listener) (*chooser.Dialog, error) {
		return chooser.FromConfig(cfg, listener).SetLogger(slog.Default()).Build(ctx, store)
	})
}
