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

type assetsCmd struct {
	query      string
	class      string
	sortBy     string
	descending bool
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list registered assets" }
func (*assetsCmd) Usage() string {
	return `aporte assets [-q <term>] [-c <class>] [-sort name|value|created] [-desc]

  Lists assets with their positions and current values, optionally filtered
  by a name search term or by class.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Case-insensitive name search term")
	f.StringVar(&c.class, "c", "", "Only assets of this class")
	f.StringVar(&c.sortBy, "sort", "name", "Sort key (name, value, created)")
	f.BoolVar(&c.descending, "desc", false, "Sort in descending order")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sortBy, err := carteira.ParseAssetSort(c.sortBy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var class carteira.AssetClass
	if c.class != "" {
		if class, err = carteira.ParseAssetClass(c.class); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
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

	assets = carteira.FilterAssetsByName(assets, c.query)
	assets = carteira.FilterAssetsByClass(assets, class)
	assets = carteira.SortAssets(assets, sortBy, c.descending)

	printMarkdown(renderer.AssetsMarkdown(assets))
	return subcommands.ExitSuccess
}
