// Package renderer renders portfolio reports as markdown.
package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/psarmento/carteira"
)

// EvolutionMarkdown renders the month-by-month valuation series as a table,
// one row per month that had at least one contribution.
func EvolutionMarkdown(series []carteira.MonthlySnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Wealth evolution")

	if len(series) == 0 {
		doc.PlainText("No contributions recorded yet.")
		return doc.String()
	}

	classes := carteira.AssetClasses()
	header := []string{"Month"}
	alignment := []md.TableAlignment{md.AlignLeft}
	for _, class := range classes {
		header = append(header, class.Label())
		alignment = append(alignment, md.AlignRight)
	}
	header = append(header, "Total")
	alignment = append(alignment, md.AlignRight)

	table := md.TableSet{
		Alignment: alignment,
		Header:    header,
		Rows:      [][]string{},
	}
	for _, snap := range series {
		row := []string{snap.Label()}
		for _, class := range classes {
			row = append(row, snap.Totals[class].String())
		}
		row = append(row, snap.Total.String())
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}
