package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/psarmento/carteira"
	"github.com/psarmento/carteira/renderer"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about your portfolio" }
func (*assistCmd) Usage() string {
	return `aporte assist <question>

  Sends your portfolio summary and evolution, together with a question, to
  Gemini and prints the answer. Requires Gemini credentials in the
  environment.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "Give me a short assessment of this portfolio's allocation and its evolution."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	_, assets, contributions, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	var prompt strings.Builder
	prompt.WriteString("You are a pragmatic personal-finance assistant. The following reports describe a private investment portfolio, values in BRL.\n\n")
	prompt.WriteString(renderer.SummaryMarkdown(assets, contributions))
	prompt.WriteString("\n")
	prompt.WriteString(renderer.EvolutionMarkdown(carteira.BuildMonthlySeries(assets, contributions)))
	prompt.WriteString("\nQuestion: ")
	prompt.WriteString(question)

	resp, err := client.Models.GenerateContent(ctx, "gemini-2.5-flash", genai.Text(prompt.String()), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating answer:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
