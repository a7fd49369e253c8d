package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/psarmento/carteira"
)

// SummaryMarkdown renders the dashboard view: per-class totals from the
// current positions, the grand total, and the latest round's outcome.
func SummaryMarkdown(assets []carteira.Asset, contributions []carteira.Contribution) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Portfolio summary")

	totals := make(map[carteira.AssetClass]carteira.Money)
	total := carteira.M(0, carteira.CurrencyBRL)
	for _, a := range assets {
		v := a.MarketValue()
		totals[a.Class] = totals[a.Class].Add(v)
		total = total.Add(v)
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Class", "Value"},
		Rows:      [][]string{},
	}
	for _, class := range carteira.AssetClasses() {
		v, ok := totals[class]
		if !ok {
			v = carteira.M(0, carteira.CurrencyBRL)
		}
		table.Rows = append(table.Rows, []string{class.Label(), v.String()})
	}
	table.Rows = append(table.Rows, []string{"Total", total.String()})
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("%d assets, %d contributions recorded.", len(assets), len(contributions)))

	if latest, ok := latestContribution(contributions); ok {
		doc.H2("Latest contribution")
		doc.PlainText(fmt.Sprintf("%s: planned %s, executed %s, variance %s.",
			latest.Date, latest.Planned, latest.Executed, latest.Variance().SignedString()))
	}

	return doc.String()
}

func latestContribution(contributions []carteira.Contribution) (carteira.Contribution, bool) {
	var latest carteira.Contribution
	found := false
	for _, c := range contributions {
		if !found || latest.Date.Before(c.Date) {
			latest, found = c, true
		}
	}
	return latest, found
}
