package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
	"github.com/psarmento/carteira/renderer"
	"github.com/shopspring/decimal"
)

type recordCmd struct {
	date    string
	planned float64
	rate    float64
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record a contribution across one or more assets" }
func (*recordCmd) Usage() string {
	return `aporte record [-d <date>] [-planned <amount>] <allocation>...

  Records one investment round. Each allocation argument is
    <asset>=<qty>x<price>   for unit-based assets (ACAO, FII, ETF-BR)
    <asset>=<amount>        for value-based assets, amount in BRL
    <asset>=<amount>usd     for value-based assets, amount in USD

  The executed total is computed from the lines; the planned amount is what
  you intended to invest, and the difference is reported as variance.

Usage Examples:
$ aporte record -d 2024-01-15 -planned 1000 PETR4=10x32.50 IVVB11=150
$ aporte record Bitcoin=100usd
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the round (defaults to today)")
	f.Float64Var(&c.planned, "planned", 0, "Planned amount for the round, in BRL")
	f.Float64Var(&c.rate, "rate", 0, "Override the fixed USD to BRL conversion rate")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one allocation is required")
		return subcommands.ExitUsageError
	}
	on := carteira.Today()
	if c.date != "" {
		var err error
		if on, err = carteira.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.rate > 0 {
		carteira.USDBRL = decimal.NewFromFloat(c.rate)
	}

	store, assets, _, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	allocations := make([]carteira.Allocation, 0, f.NArg())
	for _, arg := range f.Args() {
		alloc, err := parseAllocation(assets, arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		allocations = append(allocations, alloc)
	}

	contribution := carteira.NewContribution(on, carteira.M(c.planned, carteira.CurrencyBRL), allocations)

	// Update the running positions. Replay-based reports recompute from the
	// history instead and never read these.
	for _, alloc := range contribution.Allocations {
		for i := range assets {
			if assets[i].ID == alloc.AssetID {
				assets[i].Position = carteira.ApplyAllocation(assets[i].Position, alloc)
			}
		}
	}

	if err := store.AddContribution(contribution); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveAssets(assets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReceiptMarkdown(contribution))
	return subcommands.ExitSuccess
}

// parseAllocation turns one "<asset>=<spec>" argument into an allocation line,
// denormalizing the asset's name and class onto it.
func parseAllocation(assets []carteira.Asset, arg string) (carteira.Allocation, error) {
	ref, spec, ok := strings.Cut(arg, "=")
	if !ok {
		return carteira.Allocation{}, fmt.Errorf("malformed allocation %q: expected <asset>=<spec>", arg)
	}
	asset, err := carteira.ResolveAsset(assets, ref)
	if err != nil {
		return carteira.Allocation{}, err
	}
	alloc := carteira.Allocation{
		AssetID:   asset.ID,
		AssetName: asset.Name,
		Class:     asset.Class,
	}

	if qtyPart, pricePart, isUnit := strings.Cut(spec, "x"); isUnit {
		if !asset.Class.IsUnitBased() {
			return carteira.Allocation{}, fmt.Errorf("%s is %s: use <asset>=<amount>, not quantity and price", asset.Name, asset.Class.Label())
		}
		qty, err := decimal.NewFromString(qtyPart)
		if err != nil {
			return carteira.Allocation{}, fmt.Errorf("invalid quantity in %q: %w", arg, err)
		}
		price, err := decimal.NewFromString(pricePart)
		if err != nil {
			return carteira.Allocation{}, fmt.Errorf("invalid price in %q: %w", arg, err)
		}
		q := carteira.Q(qty)
		p := carteira.M(price, carteira.CurrencyBRL)
		alloc.UnitQuantity = &q
		alloc.UnitPrice = &p
		return alloc, nil
	}

	if !asset.Class.IsValueBased() {
		return carteira.Allocation{}, fmt.Errorf("%s is %s: use <asset>=<qty>x<price>", asset.Name, asset.Class.Label())
	}
	currency := carteira.CurrencyBRL
	if lowered := strings.ToLower(spec); strings.HasSuffix(lowered, "usd") {
		currency = carteira.CurrencyUSD
		spec = spec[:len(spec)-len("usd")]
	}
	amount, err := decimal.NewFromString(spec)
	if err != nil {
		return carteira.Allocation{}, fmt.Errorf("invalid amount in %q: %w", arg, err)
	}
	invested := carteira.M(amount, currency)
	alloc.Invested = &invested
	return alloc, nil
}
