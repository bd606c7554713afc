package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/lexicon"
)

func newStatsCmd(c *cli) *cobra.Command {
	var xmlPath, snapshotPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print summary tables of the lexicon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lex, err := c.readLexicon(xmlPath, snapshotPath)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			st := lexicon.ComputeStats(lex)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			return st.Print(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&xmlPath, "xml", "", "read the LMF XML file instead of a snapshot")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "snapshot file (default: lexicon.snapshot_path)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the tables as JSON")
	cmd.MarkFlagsMutuallyExclusive("xml", "snapshot")
	return cmd
}

// readLexicon loads the lexicon without writing anything: an explicit XML
// file wins, then an explicit snapshot, then the configured pair.
func (c *cli) readLexicon(xmlPath, snapshotPath string) (*domain.Lexicon, error) {
	switch {
	case xmlPath != "":
		return lexicon.LoadXML(xmlPath)
	case snapshotPath != "":
		return lexicon.Restore(snapshotPath)
	}
	return lexicon.Open(c.logger, c.cfg.Lexicon.SourcePath, c.cfg.Lexicon.SnapshotPath)
}
