// Package cli defines the gbkit command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gbkit/internal/config"
)

// usageError marks argument mistakes so Run can exit 2 instead of 1.
type usageError struct{ error }

func usageErrorf(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// Run executes the gbkit CLI. Exit codes: 0 ok, 1 domain failure,
// 2 usage error.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "gbkit: %v\n", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			return 2
		}
		return 1
	}
	return 0
}

// app carries the state shared by all subcommands.
type app struct {
	cfgPath string
	noColor bool
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gbkit",
		Short: "GenBank record parsing and feature extraction",
		Long: `gbkit parses GenBank flat files and resolves feature locations
(including joins, complements and fuzzy bounds) against the record's
origin sequence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.noColor || !a.cfg.Color {
				color.NoColor = true
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML config file with defaults")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable ANSI color output")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(
		a.extractCmd(),
		a.featuresCmd(),
		a.metaCmd(),
		a.intronsCmd(),
		a.diffCmd(),
		a.indexCmd(),
		versionCmd(),
	)
	return root
}
