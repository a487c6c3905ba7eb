package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
)

// CLI is the command line of filechooser.
type CLI struct {
	Root     string `help:"Storage root to browse. Defaults to $EXTERNAL_STORAGE or the home directory."`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log level."`

	Pick   PickCmd   `cmd:"" default:"withargs" help:"Choose a file or directory (default)."`
	Resume ResumeCmd `cmd:"" help:"Show the chooser again with the last saved arguments."`
	Args   ArgsCmd   `cmd:"" help:"Print the last saved arguments."`
}

var osExit = os.Exit

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	osExit(execute(os.Args[1:]))
}

func execute(args []string) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("filechooser"),
		kong.Description("Pick a file or directory in the terminal and print its path."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Exit(osExit),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err = kctx.Run(&cli); err != nil {
		if errors.Is(err, errCancelled) {
			return 1
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
