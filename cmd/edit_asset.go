package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
)

type editAssetCmd struct {
	rename string
	class  string
}

func (*editAssetCmd) Name() string     { return "edit-asset" }
func (*editAssetCmd) Synopsis() string { return "rename or re-categorize an asset" }
func (*editAssetCmd) Usage() string {
	return `aporte edit-asset [-n <new name>] [-c <new class>] <asset>

  Renames an asset and/or changes its class. The class can only change while
  no contribution references the asset: once history exists, the recorded
  lines keep their original class and a change would no longer be coherent.
`
}

func (c *editAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rename, "n", "", "New display name")
	f.StringVar(&c.class, "c", "", "New asset class")
}

func (c *editAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one asset reference is required")
		return subcommands.ExitUsageError
	}
	if c.rename == "" && c.class == "" {
		fmt.Fprintln(os.Stderr, "nothing to change: pass -n and/or -c")
		return subcommands.ExitUsageError
	}

	store, assets, contributions, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	asset, err := carteira.ResolveAsset(assets, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.rename != "" {
		asset.Name = c.rename
	}
	if c.class != "" {
		class, err := carteira.ParseAssetClass(c.class)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if referenced(contributions, asset.ID) {
			fmt.Fprintf(os.Stderr, "Error: %s already has contributions; its class cannot change\n", asset.Name)
			return subcommands.ExitFailure
		}
		asset.Class = class
	}

	if err := store.UpdateAsset(asset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s (%s)\n", asset.Name, asset.Class.Label())
	return subcommands.ExitSuccess
}

// referenced reports whether any recorded contribution line points at the asset.
func referenced(contributions []carteira.Contribution, assetID string) bool {
	for _, c := range contributions {
		for _, a := range c.Allocations {
			if a.AssetID == assetID {
				return true
			}
		}
	}
	return false
}
