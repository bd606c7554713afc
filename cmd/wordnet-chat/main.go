// Command wordnet-chat explores a WordNet lexicon: it ingests the LMF XML
// release into a snapshot, runs the console dialogue, serves a read-only
// lookup API and mirrors the lexicon into PostgreSQL.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordnet-chat/internal/app"
	"github.com/heartmarshall/wordnet-chat/internal/config"
)

// cli carries what every subcommand needs once the root has run.
type cli struct {
	configPath string

	cfg    *config.Config
	logger *slog.Logger
}

// skipSetup marks commands that run without configuration.
const skipSetup = "skip-setup"

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "wordnet-chat",
		Short:         "Chat about words with a WordNet lexicon",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return c.setup()
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to config YAML (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newIngestCmd(c),
		newStatsCmd(c),
		newChatCmd(c),
		newServeCmd(c),
		newExportCmd(c),
		newLookupCmd(c),
		newVersionCmd(),
	)
	return root
}

func (c *cli) setup() error {
	path := c.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = app.NewLogger(cfg.Log)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
