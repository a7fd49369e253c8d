package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
)

type deleteAssetCmd struct{}

func (*deleteAssetCmd) Name() string     { return "delete-asset" }
func (*deleteAssetCmd) Synopsis() string { return "remove an asset record" }
func (*deleteAssetCmd) Usage() string {
	return `aporte delete-asset <asset>

  Removes the asset record. Contribution history referencing it is kept:
  receipts and the evolution report keep rendering from the name and class
  recorded on each contribution line.
`
}

func (*deleteAssetCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one asset reference is required")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	assets, err := store.LoadAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	asset, err := carteira.ResolveAsset(assets, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.DeleteAsset(asset.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s\n", asset.Name)
	return subcommands.ExitSuccess
}
