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

type contributionsCmd struct {
	from       string
	to         string
	sortBy     string
	descending bool
}

func (*contributionsCmd) Name() string     { return "contributions" }
func (*contributionsCmd) Synopsis() string { return "list recorded contributions" }
func (*contributionsCmd) Usage() string {
	return `aporte contributions [-from <date>] [-to <date>] [-sort date|executed] [-desc]

  Lists the contribution history, optionally restricted to a period.
`
}

func (c *contributionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Only rounds on or after this date")
	f.StringVar(&c.to, "to", "", "Only rounds on or before this date")
	f.StringVar(&c.sortBy, "sort", "date", "Sort key (date, executed)")
	f.BoolVar(&c.descending, "desc", true, "Sort in descending order")
}

func (c *contributionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sortBy, err := carteira.ParseContributionSort(c.sortBy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var from, to carteira.Date
	if c.from != "" {
		if from, err = carteira.ParseDate(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if to, err = carteira.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	list, err := store.LoadContributions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	list = carteira.FilterContributionsByRange(list, from, to)
	list = carteira.SortContributions(list, sortBy, c.descending)

	printMarkdown(renderer.ContributionsMarkdown(list))
	return subcommands.ExitSuccess
}
