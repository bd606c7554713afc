package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordnet-chat/internal/app"
)

func newServeCmd(c *cli) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only lookup API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				c.cfg.Server.Port = port
			}
			return app.Serve(cmd.Context(), c.cfg, c.logger)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default: server.port)")
	return cmd
}
