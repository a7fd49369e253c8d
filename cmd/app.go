// Package cmd implements the CLI application to manage a personal
// investment portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newAssetCmd{}, "assets")
	c.Register(&assetsCmd{}, "assets")
	c.Register(&editAssetCmd{}, "assets")
	c.Register(&deleteAssetCmd{}, "assets")

	c.Register(&recordCmd{}, "contributions")
	c.Register(&contributionsCmd{}, "contributions")
	c.Register(&deleteContributionCmd{}, "contributions")
	c.Register(&receiptCmd{}, "contributions")

	c.Register(&evolutionCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&backupCmd{}, "data")
	c.Register(&importCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the directory holding the portfolio documents")

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".carteira")
	}
	return ".carteira"
}

// openStore opens the app's document store.
func openStore() (*carteira.Store, error) {
	return carteira.OpenStore(*dataDir)
}

// loadPortfolio loads both collections from the store.
func loadPortfolio() (*carteira.Store, []carteira.Asset, []carteira.Contribution, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}
	assets, err := store.LoadAssets()
	if err != nil {
		return nil, nil, nil, err
	}
	contributions, err := store.LoadContributions()
	if err != nil {
		return nil, nil, nil, err
	}
	return store, assets, contributions, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. piped output).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
