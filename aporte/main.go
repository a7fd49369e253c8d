package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/psarmento/carteira/cmd"
)

func main() {
	// Shell completion runs first: when invoked by the shell's completion
	// hook this prints candidates and exits.
	completion().Complete("aporte")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	classes := predict.Set{"ACAO", "FII", "ETF-BR", "ETF-GB", "CRIPTO"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"new-asset":           {Flags: map[string]complete.Predictor{"n": predict.Nothing, "c": classes}},
			"assets":              {Flags: map[string]complete.Predictor{"q": predict.Nothing, "c": classes, "sort": predict.Set{"name", "value", "created"}, "desc": predict.Nothing}},
			"edit-asset":          {Flags: map[string]complete.Predictor{"n": predict.Nothing, "c": classes}},
			"delete-asset":        {},
			"record":              {Flags: map[string]complete.Predictor{"d": predict.Nothing, "planned": predict.Nothing, "rate": predict.Nothing}},
			"contributions":       {Flags: map[string]complete.Predictor{"from": predict.Nothing, "to": predict.Nothing, "sort": predict.Set{"date", "executed"}, "desc": predict.Nothing}},
			"delete-contribution": {},
			"receipt":             {},
			"evolution":           {},
			"summary":             {},
			"export":              {Flags: map[string]complete.Predictor{"o": predict.Files("*.html")}},
			"backup":              {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import":              {Flags: map[string]complete.Predictor{"f": predict.Nothing}, Args: predict.Files("*.json")},
			"assist":              {},
		},
	}
}
