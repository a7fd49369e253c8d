package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/psarmento/carteira"
)

// AssetsMarkdown renders the asset listing with each position and its value.
func AssetsMarkdown(assets []carteira.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Assets")

	if len(assets) == 0 {
		doc.PlainText("No assets registered yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Name", "Class", "Quantity", "Avg. cost", "Value"},
		Rows:   [][]string{},
	}
	for _, a := range assets {
		qty, avg := "-", "-"
		if a.Class.IsUnitBased() {
			qty = a.Position.Quantity.String()
			avg = a.Position.AvgCost.String()
		}
		table.Rows = append(table.Rows, []string{
			a.Name,
			a.Class.Label(),
			qty,
			avg,
			a.MarketValue().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
