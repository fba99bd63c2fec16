// Command fin analyses personal finances: health score, net worth, budget insights and
// cashflow projections.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/Khaaled22/finanzas-app-v5-sub000/cmd"
	"github.com/Khaaled22/finanzas-app-v5-sub000/docs"
	"github.com/google/subcommands"
)

func main() {
	// A missing .env is fine: the environment is then used as is.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, "fin")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion(commander).Complete("fin")

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the commands and their flags for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	topics, _ := docs.GetAllTopics()
	args := map[string]complete.Predictor{
		"import": predict.Files("*.json"),
		"topic":  predict.Set(topics),
	}

	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"c":      predict.Nothing,
			"v":      predict.Nothing,
		},
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: args[c.Name()]}
		fs.VisitAll(func(f *flag.Flag) {
			switch f.Name {
			case "o", "frontmatter":
				sub.Flags[f.Name] = predict.Files("*")
			default:
				sub.Flags[f.Name] = predict.Nothing
			}
		})
		root.Sub[c.Name()] = sub
	})
	return root
}
