package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/logging"
)

type rootOptions struct {
	env   string
	style string
	now   func() time.Time
}

var tableStyles = map[string]table.Style{
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"plain":   table.StyleDefault,
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:           "manuctl",
		Short:         "Inspect manu classification, statistics and bulk imports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := tableStyles[opts.style]; !ok {
				return fmt.Errorf("unknown table style %q", opts.style)
			}
			logger, err := logging.New(opts.env)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.env, "env", logging.EnvLocal, "logger environment (local, development, production)")
	cmd.PersistentFlags().StringVar(&opts.style, "style", "light", "table style (light, rounded, plain)")

	cmd.AddCommand(newClassifyCmd(opts), newStatsCmd(opts), newImportCmd(opts))
	return cmd
}

// newTable returns a table writer that renders to out in the selected style
func (o *rootOptions) newTable(out io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(tableStyles[o.style])
	if title != "" {
		t.SetTitle(title)
	}
	return t
}
