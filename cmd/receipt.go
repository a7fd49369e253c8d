package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira/renderer"
)

type receiptCmd struct{}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "display a contribution receipt" }
func (*receiptCmd) Usage() string {
	return `aporte receipt <id>

  Displays one contribution as a receipt: its lines, the planned and executed
  amounts, and the variance.
`
}

func (*receiptCmd) SetFlags(f *flag.FlagSet) {}

func (c *receiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one contribution id is required")
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
	contribution, err := resolveContribution(list, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReceiptMarkdown(contribution))
	return subcommands.ExitSuccess
}
