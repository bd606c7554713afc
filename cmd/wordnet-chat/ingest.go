package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordnet-chat/internal/lexicon"
)

func newIngestCmd(c *cli) *cobra.Command {
	var xmlPath, snapshotPath string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Parse the LMF XML release, validate it and write a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if xmlPath == "" {
				xmlPath = c.cfg.Lexicon.SourcePath
			}
			if snapshotPath == "" {
				snapshotPath = c.cfg.Lexicon.SnapshotPath
			}
			if xmlPath == "" {
				return fmt.Errorf("ingest: --xml or lexicon.source_path is required")
			}
			if snapshotPath == "" {
				return fmt.Errorf("ingest: --snapshot or lexicon.snapshot_path is required")
			}

			start := time.Now()
			lex, err := lexicon.LoadXML(xmlPath)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			if err := lexicon.Save(lex, snapshotPath); err != nil {
				return fmt.Errorf("ingest: %w", err)
			}

			st := lexicon.ComputeStats(lex)
			c.logger.Info("lexicon ingested",
				slog.String("lexicon", st.LexiconID),
				slog.String("source", xmlPath),
				slog.String("snapshot", snapshotPath),
				slog.Int("entries", st.Entries),
				slog.Int("senses", st.Senses),
				slog.Int("synsets", st.Synsets),
				slog.Int("syntactic_behaviours", st.SyntacticBehaviours),
				slog.Duration("took", time.Since(start)),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&xmlPath, "xml", "", "WordNet-LMF XML file (default: lexicon.source_path)")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "snapshot file to write (default: lexicon.snapshot_path)")
	return cmd
}
