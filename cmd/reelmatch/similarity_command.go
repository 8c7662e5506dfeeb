package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/recommend"
)

func newSimilarityCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "similarity [<title>]",
		Short: "Show the cosine similarity matrix, or one title's row",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ensureEngine(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, renderSimilarityMatrix(engine))
				return nil
			}

			title := strings.Join(args, " ")
			idx, ok := engine.Catalog().Index(title)
			if !ok {
				return fmt.Errorf("%w: %q", recommend.ErrNotFound, title)
			}
			row := engine.Matrix().Row(idx)
			rows := make([][]string, 0, len(row))
			for j, score := range row {
				rows = append(rows, []string{strconv.Itoa(j), engine.Catalog().Record(j).Title, formatScore(score)})
			}
			fmt.Fprintln(out, renderTable(
				fmt.Sprintf("Similarity to %s", title),
				[]string{"#", "Title", "Score"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
				0,
			))
			return nil
		},
	}
}

// renderSimilarityMatrix labels columns by catalog index to keep the table
// narrow; row labels carry the titles.
func renderSimilarityMatrix(engine *recommend.Engine) string {
	m := engine.Matrix()
	n := m.Size()

	headers := make([]string, 0, n+1)
	aligns := make([]columnAlignment, 0, n+1)
	headers = append(headers, "Title")
	aligns = append(aligns, alignLeft)
	for j := 0; j < n; j++ {
		headers = append(headers, strconv.Itoa(j))
		aligns = append(aligns, alignRight)
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, fmt.Sprintf("%d %s", i, engine.Catalog().Record(i).Title))
		for j := 0; j < n; j++ {
			row = append(row, fmt.Sprintf("%.2f", m.At(i, j)))
		}
		rows = append(rows, row)
	}
	return renderTable("Cosine similarity", headers, rows, aligns, 0)
}
