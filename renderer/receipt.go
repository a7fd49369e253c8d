package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/psarmento/carteira"
)

// ReceiptMarkdown renders one contribution as a human-readable receipt. It
// reads only the denormalized fields on each line, so receipts of rounds whose
// assets were later deleted or renamed still render faithfully.
func ReceiptMarkdown(c carteira.Contribution) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Contribution receipt")
	doc.PlainText(fmt.Sprintf("Date: %s", c.Date))
	doc.PlainText(fmt.Sprintf("Reference: %s", c.ID))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Class", "Quantity", "Price", "Amount"},
		Rows:   [][]string{},
	}
	for _, a := range c.Allocations {
		qty, price := "-", "-"
		if a.UnitQuantity != nil {
			qty = a.UnitQuantity.String()
		}
		if a.UnitPrice != nil {
			price = a.UnitPrice.String()
		}
		if a.Invested != nil {
			price = a.Invested.String()
		}
		table.Rows = append(table.Rows, []string{
			a.AssetName,
			a.Class.Label(),
			qty,
			price,
			a.Value().String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Planned: %s", c.Planned))
	doc.PlainText(fmt.Sprintf("Executed: %s", c.Executed))
	doc.PlainText(fmt.Sprintf("Variance: %s", c.Variance().SignedString()))

	return doc.String()
}
