package main

import (
	"context"

	"github.com/filetug/filechooser/pkg/chooser"
	"github.com/filetug/filechooser/pkg/chooser/chstate"
	"github.com/filetug/filechooser/pkg/files"
)

// ResumeCmd rebuilds the chooser from the saved arguments.
type ResumeCmd struct{}

func (c *ResumeCmd) Run(ctx context.Context, cli *CLI) error {
	cfg, err := chstate.Load()
	if err != nil {
		return err
	}
	return runChooser(ctx, cli, func(ctx context.Context, store files.Store, listener chooser.Listener) (*chooser.Dialog, error) {
		return chooser.Restore(ctx, store, cfg, listener)
	})
}
