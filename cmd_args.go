package main

import (
	"github.com/filetug/filechooser/pkg/chooser/chstate"
	"github.com/filetug/filechooser/pkg/highlight"
	"github.com/pkg/errors"
)

// ArgsCmd prints the saved arguments bundle.
type ArgsCmd struct {
	Color bool `help:"Highlight the YAML output."`
}

func (c *ArgsCmd) Run(cli *CLI) error {
	logger := createCLILogger(cli.LogLevel)
	cfg, err := chstate.Load()
	if err != nil {
		return err
	}
	data, err := chstate.Marshal(cfg)
	if err != nil {
		return err
	}
	logger.Debug("loaded saved arguments", "path", chstate.FilePath())
	if c.Color {
		return highlight.YAML(stdout, string(data))
	}
	_, err = stdout.Write(data)
	return errors.WithStack(err)
}
