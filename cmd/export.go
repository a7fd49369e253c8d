package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira/renderer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a contribution receipt as an HTML document" }
func (*exportCmd) Usage() string {
	return `aporte export [-o <file>] <id>

  Renders one contribution receipt as a standalone HTML document, suitable
  for printing or archiving.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "receipt.html", "Output file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	md := renderer.ReceiptMarkdown(contribution)
	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := converter.Convert([]byte(md), &body); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering receipt: %v\n", err)
		return subcommands.ExitFailure
	}

	html := fmt.Sprintf(receiptPage, contribution.Date, body.String())
	if err := os.WriteFile(c.output, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote receipt to %s\n", c.output)
	return subcommands.ExitSuccess
}

const receiptPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Comprovante de aporte — %s</title>
<style>
body { font-family: sans-serif; max-width: 50rem; margin: 2rem auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
</style>
</head>
<body>
%s
</body>
</html>
`
