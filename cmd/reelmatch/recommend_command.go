package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/recommend"
)

type recommendationView struct {
	Query   string            `json:"query"`
	Matches []recommend.Match `json:"matches"`
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var showScores bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Print movies similar to a catalog title",
		Long: "Print the catalog titles whose descriptions are closest to <title>.\n" +
			"The title must match a catalog entry exactly; unquoted words are joined with spaces.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			engine, err := ctx.ensureEngine(cmd)
			if err != nil {
				return err
			}

			title := strings.Join(args, " ")
			matches, err := engine.RecommendN(queryContext(cmd.Context()), title, limit)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, recommendationView{Query: title, Matches: matches})
			}
			out := cmd.OutOrStdout()
			if showScores {
				fmt.Fprintln(out, renderMatchTable(title, matches))
				return nil
			}
			writeMatchList(out, matches)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of recommendations (default from config)")
	cmd.Flags().BoolVar(&showScores, "scores", false, "Show similarity scores in a table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func writeMatchList(out io.Writer, matches []recommend.Match) {
	for _, m := range matches {
		fmt.Fprintf(out, "%d. %s\n", m.Rank, m.Title)
	}
}

func renderMatchTable(title string, matches []recommend.Match) string {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Rank),
			m.Title,
			formatScore(m.Score),
		})
	}
	return renderTable(
		fmt.Sprintf("Similar to %s", title),
		[]string{"#", "Title", "Score"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight},
		0,
	)
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.4f", score)
}
