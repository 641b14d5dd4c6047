package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/portfolio-planner/internal/server"
	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner calculators as a JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(a.engine()).Serve(ctx, a.settings.Addr)
		},
	}
	cmd.Flags().StringVar(&a.settings.Addr, "addr", a.settings.Addr, "Listen address (env PLANNER_ADDR)")
	return cmd
}
