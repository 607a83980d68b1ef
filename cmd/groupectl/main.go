// Command groupectl allocates and validates groups from YAML files without
// a running server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// CLI is the command tree.
type CLI struct {
	Allocate allocateCmd `cmd:"" help:"Split a roster file into groups."`
	Validate validateCmd `cmd:"" help:"Check how evenly a partition file mixes attributes."`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "groupectl: %v\n", err)
		os.Exit(1)
	}
}

// execute parses args and runs the selected command, writing results to out.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("groupectl"),
		kong.Description("Balanced group allocation for rosters"),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(out, (*io.Writer)(nil)),
		kong.Writers(out, errOut),
		kong.ConfigureHelp(kong.HelpOptions{Tree: true}),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run()
}
