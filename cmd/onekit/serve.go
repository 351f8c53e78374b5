package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"yoth.dev/onekit-go/internal/server"
)

type serveFlags struct {
	addr    string
	workers int
}

func newServeCmd(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the formatting service over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			cfg := a.cfg.Server
			if flags.addr != "" {
				cfg.Addr = flags.addr
			}
			if flags.workers > 0 {
				cfg.Workers = flags.workers
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := server.New(
				server.WithAddr(cfg.Addr),
				server.WithWorkers(cfg.Workers),
				server.WithTimeouts(cfg.ReadTimeout, cfg.WriteTimeout),
				server.WithMaxBodySize(cfg.MaxBodySize),
				server.WithEnv(a.env),
				server.WithLogger(a.log),
			)
			return s.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&flags.addr, "addr", "a", "", "Listen address, overrides server.addr")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "Batch workers, overrides server.workers")

	return cmd
}
