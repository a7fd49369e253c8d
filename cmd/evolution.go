package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
	"github.com/psarmento/carteira/renderer"
)

type evolutionCmd struct{}

func (*evolutionCmd) Name() string     { return "evolution" }
func (*evolutionCmd) Synopsis() string { return "display the month-by-month wealth evolution" }
func (*evolutionCmd) Usage() string {
	return `aporte evolution

  Replays the whole contribution history and displays the portfolio's
  valuation at the end of each month that had a contribution, broken down
  by asset class.
`
}

func (*evolutionCmd) SetFlags(f *flag.FlagSet) {}

func (c *evolutionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, assets, contributions, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	series := carteira.BuildMonthlySeries(assets, contributions)
	printMarkdown(renderer.EvolutionMarkdown(series))
	return subcommands.ExitSuccess
}
