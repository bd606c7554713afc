package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordnet-chat/internal/app"
)

func newChatCmd(c *cli) *cobra.Command {
	var snapshotPath string
	var seed int64

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start the console dialogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if snapshotPath != "" {
				c.cfg.Lexicon.SnapshotPath = snapshotPath
			}
			if cmd.Flags().Changed("seed") {
				c.cfg.Chat.Seed = seed
			}
			return app.Chat(cmd.Context(), c.cfg, c.logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "snapshot file (default: lexicon.snapshot_path)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible choices (0 means time-based)")
	return cmd
}
