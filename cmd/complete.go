package cmd

import (
	"strings"

	"github.com/etnz/cambio"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tchap/go-patricia/v2/patricia"
)

// currencyTrie indexes the convertible currency codes.
var currencyTrie = newCurrencyTrie(cambio.SupportedCodes())

func newCurrencyTrie(codes []string) *patricia.Trie {
	trie := patricia.NewTrie()
	for _, code := range codes {
		trie.Insert(patricia.Prefix(code), code)
	}
	return trie
}

// predictCurrencies completes currency codes, case insensitive.
func predictCurrencies(trie *patricia.Trie) complete.PredictFunc {
	return func(prefix string) []string {
		var codes []string
		collect := func(_ patricia.Prefix, item patricia.Item) error {
			codes = append(codes, item.(string))
			return nil
		}
		if prefix == "" {
			trie.Visit(collect)
		} else {
			trie.VisitSubtree(patricia.Prefix(strings.ToUpper(prefix)), collect)
		}
		return codes
	}
}

// predictPairs completes FROM-TO pairs.
func predictPairs(trie *patricia.Trie) complete.PredictFunc {
	currencies := predictCurrencies(trie)
	return func(prefix string) []string {
		from, to, ok := strings.Cut(prefix, "-")
		if !ok {
			return currencies(prefix)
		}
		from = strings.ToUpper(from)
		var pairs []string
		for _, code := range currencies(to) {
			if code != from {
				pairs = append(pairs, from+"-"+code)
			}
		}
		return pairs
	}
}

// Completion describes the cbx command line for shell completion.
func Completion() *complete.Command {
	currency := predictCurrencies(currencyTrie)
	pair := predictPairs(currencyTrie)
	pairFlags := map[string]complete.Predictor{
		"from": currency,
		"to":   currency,
		"pair": pair,
		"swap": predict.Nothing,
	}
	with := func(flags map[string]complete.Predictor, extra map[string]complete.Predictor) map[string]complete.Predictor {
		all := make(map[string]complete.Predictor, len(flags)+len(extra))
		for k, v := range flags {
			all[k] = v
		}
		for k, v := range extra {
			all[k] = v
		}
		return all
	}
	dedup := map[string]complete.Predictor{
		"by":         predict.Set{"region", "currency"},
		"restricted": predict.Nothing,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.toml"),
			"verbose":   predict.Nothing,
			"raw":       predict.Nothing,
			"watchlist": predict.Files("*.yaml"),
			"db":        predict.Files("*.db"),
		},
		Sub: map[string]*complete.Command{
			"countries": {Flags: with(dedup, map[string]complete.Predictor{"flags": predict.Nothing})},
			"select":    {Flags: dedup},
			"flag": {Flags: map[string]complete.Predictor{
				"width":   predict.Set{"20", "40", "80", "160", "320"},
				"resolve": predict.Nothing,
			}},
			"convert": {Flags: pairFlags},
			"chart": {Flags: with(pairFlags, map[string]complete.Predictor{
				"days":    predict.Set{"7", "15", "30", "60", "90"},
				"compact": predict.Nothing,
			})},
			"currencies": {},
			"watch": {Sub: map[string]*complete.Command{
				"list": {Flags: map[string]complete.Predictor{"base": currency}},
				"add":  {Flags: map[string]complete.Predictor{"country": predict.Something}, Args: currency},
				"set":  {},
				"rm":   {},
			}},
			"quotes": {Sub: map[string]*complete.Command{
				"fetch": {Flags: map[string]complete.Predictor{"base": currency, "limit": predict.Something}, Args: pair},
				"list":  {},
			}},
			"topic": {Flags: map[string]complete.Predictor{"list": predict.Nothing}},
		},
	}
}
