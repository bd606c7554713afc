package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordnet-chat/internal/adapter/postgres"
	"github.com/heartmarshall/wordnet-chat/internal/adapter/postgres/wordnet"
)

func newLookupCmd(c *cli) *cobra.Command {
	var lexiconID string

	cmd := &cobra.Command{
		Use:   "lookup-pg <written form>",
		Short: "Look up exported lexical entries in PostgreSQL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !c.cfg.Database.Enabled() {
				return fmt.Errorf("lookup-pg: database.dsn: %w", postgres.ErrNotConfigured)
			}

			pool, err := postgres.NewPool(ctx, c.cfg.Database)
			if err != nil {
				return fmt.Errorf("lookup-pg: %w", err)
			}
			defer pool.Close()

			repo := wordnet.New(pool, postgres.NewTxManager(pool), c.cfg.Database.ExportBatchSize)
			entries, err := repo.EntriesByWrittenForm(ctx, lexiconID, args[0])
			if err != nil {
				return fmt.Errorf("lookup-pg: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "no lexical entry %q in %s\n", args[0], lexiconID)
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%s\t%s\tsenses: %d\n", e.ID, e.PartOfSpeech().Name(), e.WrittenForm(), len(e.SenseIDs))
				for _, p := range e.Lemma.Pronunciations {
					if p.Variety != "" {
						fmt.Fprintf(out, "\tpronounced [%s] (%s)\n", p.Text, p.Variety)
					} else {
						fmt.Fprintf(out, "\tpronounced [%s]\n", p.Text)
					}
				}
				if len(e.Forms) > 0 {
					forms := make([]string, len(e.Forms))
					for i, f := range e.Forms {
						forms[i] = f.WrittenForm
					}
					fmt.Fprintf(out, "\tforms: %s\n", strings.Join(forms, ", "))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lexiconID, "lexicon", "", "id of the exported lexicon")
	_ = cmd.MarkFlagRequired("lexicon")
	return cmd
}
