package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelmatch/internal/catalog"
)

const descriptionWidth = 60

type vocabularyEntry struct {
	Term    string  `json:"term"`
	DocFreq int     `json:"doc_freq"`
	IDF     float64 `json:"idf"`
}

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded movie catalog",
	}
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogVocabularyCommand(ctx))
	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog titles and descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ensureEngine(cmd)
			if err != nil {
				return err
			}
			records := engine.Catalog().Records()
			if asJSON {
				return writeJSON(cmd, records)
			}
			terms := make([]int, len(records))
			for i := range records {
				terms[i] = engine.Vector(i).NonZero()
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCatalogTable(records, terms))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// renderCatalogTable lists records with the number of indexed terms in each
// description.
func renderCatalogTable(records []catalog.Record, terms []int) string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{strconv.Itoa(i), r.Title, r.Description, strconv.Itoa(terms[i])})
	}
	return renderTable(
		fmt.Sprintf("Catalog (%d movies)", len(records)),
		[]string{"#", "Title", "Description", "Terms"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
		descriptionWidth,
	)
}

func newCatalogVocabularyCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "vocabulary",
		Short: "List indexed terms with document frequency and IDF weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ensureEngine(cmd)
			if err != nil {
				return err
			}
			terms := engine.Vocabulary().Terms()
			entries := make([]vocabularyEntry, 0, len(terms))
			for _, term := range terms {
				idf, _ := engine.IDF(term)
				entries = append(entries, vocabularyEntry{
					Term:    term,
					DocFreq: engine.Corpus().DocFreq(term),
					IDF:     idf,
				})
			}
			if asJSON {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Term, strconv.Itoa(e.DocFreq), formatScore(e.IDF)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				fmt.Sprintf("Vocabulary (%d terms)", len(entries)),
				[]string{"Term", "DF", "IDF"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
				0,
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
