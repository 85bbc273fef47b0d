package cmd

import (
	"github.com/etnz/holdings"
	"github.com/etnz/holdings/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the hld commands and flags for shell completion.
//
// Completion runs before flags are parsed, so symbols are predicted from the
// default portfolio file.
func Completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"menu":   {},
			"add":    {},
			"remove": {Args: complete.PredictFunc(predictHeldSymbols)},
			"view":   {Flags: map[string]complete.Predictor{"markdown": predict.Nothing}},
			"topic":  {Args: complete.PredictFunc(predictTopics)},
			"help":   {Args: predict.Set{"menu", "add", "remove", "view", "topic"}},
			"flags":  {},
		},
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.csv"),
			"log-file":       predict.Files("*.log"),
			"v":              predict.Nothing,
			"market":         predict.Set{"yahoo", "eodhd"},
			"eodhd-api-key":  predict.Nothing,
		},
	}
}

// predictHeldSymbols returns the symbols of the portfolio file.
func predictHeldSymbols(prefix string) []string {
	store, err := holdings.Open(*portfolioFile, nil)
	if err != nil {
		return nil
	}
	return store.Symbols()
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, docs.All)
}
