package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
)

type importCmd struct {
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a backup document" }
func (*importCmd) Usage() string {
	return `aporte import [-f] <file>

  Replaces both collections with the contents of a backup document exported
  by the browser app (or by the backup command). Refuses to overwrite a
  non-empty portfolio unless -f is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite a non-empty portfolio")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one backup file is required")
		return subcommands.ExitUsageError
	}

	store, existing, _, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(existing) > 0 && !c.force {
		fmt.Fprintln(os.Stderr, "the portfolio is not empty; pass -f to replace it")
		return subcommands.ExitFailure
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	assets, contributions, err := carteira.ImportBackup(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.SaveAssets(assets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveContributions(contributions); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d assets and %d contributions\n", len(assets), len(contributions))
	return subcommands.ExitSuccess
}
