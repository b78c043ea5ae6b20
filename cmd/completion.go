package cmd

import (
	"flag"
	"log"

	"github.com/etnz/expense"
	"github.com/etnz/expense/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion: the global flags,
// each subcommand and its flags.
func Completion(global *flag.FlagSet, commands []subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	for _, c := range commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}

	if topic, ok := root.Sub["topic"]; ok {
		topics, err := docs.GetAllTopics()
		if err != nil {
			log.Printf("cannot list topics for completion: %v", err)
		}
		topic.Args = predict.Set(topics)
	}
	return root
}

// flagPredictors maps each flag to the predictor of its values.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case isBoolFlag(fl):
			predictors[fl.Name] = predict.Nothing
		case fl.Name == "file":
			predictors[fl.Name] = predict.Files("*.json")
		case fl.Name == "on-corrupt":
			predictors[fl.Name] = predict.Set{expense.ResetToEmpty.String(), expense.FailOnCorrupt.String()}
		case fl.Name == "currency":
			predictors[fl.Name] = predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD"}
		default:
			predictors[fl.Name] = predict.Something
		}
	})
	return predictors
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
