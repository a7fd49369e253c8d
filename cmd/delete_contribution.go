package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
)

type deleteContributionCmd struct{}

func (*deleteContributionCmd) Name() string     { return "delete-contribution" }
func (*deleteContributionCmd) Synopsis() string { return "delete one or more contributions" }
func (*deleteContributionCmd) Usage() string {
	return `aporte delete-contribution <id>...

  Deletes contributions by identity (a unique prefix is enough). Current
  asset positions are never recomputed; only replay-based reports reflect
  the removed history.
`
}

func (*deleteContributionCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteContributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one contribution id is required")
		return subcommands.ExitUsageError
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

	ids := make([]string, 0, f.NArg())
	for _, ref := range f.Args() {
		c, err := resolveContribution(list, ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		ids = append(ids, c.ID)
	}

	if err := store.DeleteContributions(ids...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d contribution(s)\n", len(ids))
	return subcommands.ExitSuccess
}

// resolveContribution finds a contribution by id or unique id prefix.
func resolveContribution(list []carteira.Contribution, ref string) (carteira.Contribution, error) {
	var matches []carteira.Contribution
	for _, c := range list {
		if c.ID == ref {
			return c, nil
		}
		if strings.HasPrefix(c.ID, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return carteira.Contribution{}, fmt.Errorf("no contribution matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return carteira.Contribution{}, fmt.Errorf("contribution id %q is ambiguous", ref)
	}
}
