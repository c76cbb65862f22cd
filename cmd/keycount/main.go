package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"namespacelabs.dev/keycount/pkg/blog"
	"namespacelabs.dev/keycount/pkg/config"
	"namespacelabs.dev/keycount/pkg/keycount"
)

const errorWidth = 80

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "keycount",
		Short:         "Count the top-level keys of a JSON definitions file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg := config.Default()
	cmd.Flags().StringVar(&cfg.Path, "path", cfg.Path, "Path to the definitions file.")
	verbose := cmd.Flags().Bool("verbose", false, "Log each stage to stderr.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if *verbose {
			l := blog.New(cmd.ErrOrStderr(), true)
			ctx = l.WithContext(ctx)
		}

		_, err := keycount.Run(ctx, cfg, cmd.OutOrStdout())
		return err
	}

	return cmd
}

// run executes the command line in args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}

	l := blog.New(stderr, false)

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(l.WithContext(ctx)); err != nil {
		printError(stderr, err)
		return 1
	}

	return 0
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, wordwrap.String(err.Error(), errorWidth))
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
