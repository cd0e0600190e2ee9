// Plotdoc renders TOML or YAML plot documents to PNG.
//
// Usage:
//
//	plotdoc [-o out.png] [-v] [--timeout 10s] plot.toml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vdobler/cartesian"
	"github.com/vdobler/cartesian/document"
	"github.com/vdobler/cartesian/plotview"
	"gonum.org/v1/plot/vg"
)

type options struct {
	out     string
	verbose bool
	timeout time.Duration
}

func newCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "plotdoc [flags] document",
		Short: "Render a plot document to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				cartesian.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			return run(ctx, args[0], opts.out)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&opts.out, "output", "o", "plot.png", "output file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "maximum time to wait for images")
	return cmd
}

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, in, out string) error {
	doc, err := document.Load(in)
	if err != nil {
		return err
	}
	p, err := doc.Build()
	if err != nil {
		return err
	}

	cfg := plotview.DefaultConfig()
	if doc.Width > 0 {
		cfg.Width = vg.Length(doc.Width)
	}
	if doc.Height > 0 {
		cfg.Height = vg.Length(doc.Height)
	}
	v := plotview.New(p.Frame, cfg)
	defer v.Close()
	if err := v.Add(p.Factories()...); err != nil {
		return err
	}
	if err := v.Wait(ctx); err != nil {
		return err
	}
	if err := v.Paint(); err != nil {
		return err
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := v.WritePNG(w); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return w.Close()
}
