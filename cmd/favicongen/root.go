package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/benoitkugler/favicon/favicon"
	"github.com/benoitkugler/favicon/version"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

// newLogger sends generator progress to stdout and warnings to stderr.
func newLogger(stdout, stderr io.Writer) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		newProgressHandler(stdout),
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}),
	))
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   version.Name,
		Short: "favicongen renders public/favicon.svg into favicon.ico, logo192.png and logo512.png",
		Long: `favicongen renders public/favicon.svg at 256x256, then writes
public/favicon.ico (16, 32, 48 and 64 pixels), public/logo192.png and
public/logo512.png. Existing files are replaced.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err := favicon.New(favicon.WithLogger(logger)).Generate()
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}
