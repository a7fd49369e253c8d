package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
)

type newAssetCmd struct {
	name  string
	class string
}

func (*newAssetCmd) Name() string     { return "new-asset" }
func (*newAssetCmd) Synopsis() string { return "register a new asset" }
func (*newAssetCmd) Usage() string {
	return `aporte new-asset -n <name> -c <class>

  Registers an asset with a zero position. Classes: ACAO, FII, ETF-BR
  (unit-based), ETF-GB, CRIPTO (value-based).

Usage Examples:
$ aporte new-asset -n PETR4 -c ACAO
$ aporte new-asset -n "Bitcoin" -c CRIPTO
`
}

func (c *newAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Display name of the asset")
	f.StringVar(&c.class, "c", "", "Asset class")
}

func (c *newAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	class, err := carteira.ParseAssetClass(c.class)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	asset, err := carteira.NewAsset(c.name, class)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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
	if err := store.SaveAssets(append(assets, asset)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered %s (%s) as %s\n", asset.Name, asset.Class.Label(), asset.ID)
	return subcommands.ExitSuccess
}
