package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordnet-chat/internal/adapter/postgres"
	"github.com/heartmarshall/wordnet-chat/internal/adapter/postgres/wordnet"
	"github.com/heartmarshall/wordnet-chat/internal/lexicon"
)

func newExportCmd(c *cli) *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "export-pg",
		Short: "Apply migrations and copy the lexicon into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if !c.cfg.Database.Enabled() {
				return fmt.Errorf("export-pg: database.dsn: %w", postgres.ErrNotConfigured)
			}
			if snapshotPath != "" {
				c.cfg.Lexicon.SnapshotPath = snapshotPath
			}

			lex, err := lexicon.Open(c.logger, c.cfg.Lexicon.SourcePath, c.cfg.Lexicon.SnapshotPath)
			if err != nil {
				return fmt.Errorf("export-pg: %w", err)
			}

			applied, err := postgres.Migrate(ctx, c.cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("export-pg: %w", err)
			}
			c.logger.Info("migrations applied", slog.Int("count", applied))

			pool, err := postgres.NewPool(ctx, c.cfg.Database)
			if err != nil {
				return fmt.Errorf("export-pg: %w", err)
			}
			defer pool.Close()

			repo := wordnet.New(pool, postgres.NewTxManager(pool), c.cfg.Database.ExportBatchSize)
			res, err := repo.Export(ctx, lex)
			if err != nil {
				return fmt.Errorf("export-pg: %w", err)
			}

			entries, err := repo.CountEntries(ctx, res.LexiconID, "")
			if err != nil {
				return fmt.Errorf("export-pg: read back: %w", err)
			}
			if entries != len(lex.Entries) {
				return fmt.Errorf("export-pg: read back %d lexical entries, exported %d", entries, len(lex.Entries))
			}
			exportedAt, err := repo.ExportedAt(ctx, res.LexiconID)
			if err != nil {
				return fmt.Errorf("export-pg: read back: %w", err)
			}

			c.logger.Info("lexicon exported",
				slog.String("lexicon", res.LexiconID),
				slog.Int64("rows", res.Rows),
				slog.Int("batches", res.Batches),
				slog.Int("entries", entries),
				slog.Time("exported_at", exportedAt),
				slog.Duration("took", res.Duration),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "exported %s: %d lexical entries, %d rows at %s\n",
				res.LexiconID, entries, res.Rows, exportedAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "snapshot file (default: lexicon.snapshot_path)")
	return cmd
}
