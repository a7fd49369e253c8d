package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/psarmento/carteira"
)

// ContributionsMarkdown renders the contribution history listing.
func ContributionsMarkdown(list []carteira.Contribution) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Contributions")

	if len(list) == 0 {
		doc.PlainText("No contributions recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Reference", "Planned", "Executed", "Variance", "Lines"},
		Rows:   [][]string{},
	}
	for _, c := range list {
		table.Rows = append(table.Rows, []string{
			c.Date.String(),
			shortID(c.ID),
			c.Planned.String(),
			c.Executed.String(),
			c.Variance().SignedString(),
			fmt.Sprintf("%d", len(c.Allocations)),
		})
	}
	doc.Table(table)

	return doc.String()
}

// shortID keeps listings compact; full identities appear on receipts.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
