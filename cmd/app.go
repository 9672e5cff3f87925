// Package cmd implements the cbx command line application: country and currency
// selection, conversion, rate charts, selected currencies and quotations.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/cambio"
	"github.com/etnz/cambio/awesomeapi"
	"github.com/etnz/cambio/config"
	"github.com/etnz/cambio/exchangerate"
	"github.com/etnz/cambio/fetch"
	"github.com/etnz/cambio/restcountries"
	"github.com/etnz/cambio/store"
	"github.com/etnz/cambio/watchlist"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&countriesCmd{}, "countries")
	c.Register(&selectCmd{}, "countries")
	c.Register(&flagCmd{}, "countries")

	c.Register(&convertCmd{}, "rates")
	c.Register(&chartCmd{}, "rates")
	c.Register(&currenciesCmd{}, "rates")

	c.Register(&watchCmd{}, "selection")
	c.Register(&quotesCmd{}, "selection")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile    = flag.String("config", "", "Path to the TOML config file. Defaults to <user config dir>/cambio/config.toml")
	verbose       = flag.Bool("verbose", false, "Print debug logs")
	raw           = flag.Bool("raw", false, "Print raw markdown instead of rendering it for the terminal")
	watchlistFile = flag.String("watchlist", "", "Path to the selected currencies file, overrides the config")
	databaseFile  = flag.String("db", "", "Path to the quotations database, overrides the config")
)

var (
	cfgOnce sync.Once
	cfg     *config.Config
)

// appConfig returns the configuration, loaded on first call and overridden by the global flags.
func appConfig() *config.Config {
	cfgOnce.Do(func() {
		cfg, _ = config.LoadWithPriority(*configFile)
		if *watchlistFile != "" {
			cfg.Watchlist = *watchlistFile
		}
		if *databaseFile != "" {
			cfg.Database = *databaseFile
		}
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = log.WarnLevel
		}
		if *verbose {
			level = log.DebugLevel
		}
		log.SetLevel(level)
		cambio.FlagCDN = cfg.Endpoints.FlagCDN
	})
	return cfg
}

// fetcher returns the HTTP client shared by remote services.
func fetcher() *fetch.Client {
	c := appConfig()
	opts := fetch.Options{Timeout: c.Timeout.Duration}
	if c.Cache {
		if dir, err := os.UserCacheDir(); err == nil {
			opts.CacheDir = filepath.Join(dir, "cambio")
		} else {
			log.Warnf("no cache directory, HTTP cache disabled: %v", err)
		}
	}
	return fetch.New(opts)
}

func newDirectory(opts cambio.Options) *cambio.Directory {
	c := appConfig()
	return cambio.NewDirectory(restcountries.New(fetcher(), c.Endpoints.RestCountries), opts, c.Timeout.Duration)
}

func newRates() *awesomeapi.Client {
	return awesomeapi.New(fetcher(), appConfig().Endpoints.AwesomeAPI)
}

func newExchangeRate() *exchangerate.Client {
	return exchangerate.New(fetcher(), appConfig().Endpoints.ExchangeRate)
}

func loadWatchlist() (*watchlist.List, error) {
	return watchlist.Load(appConfig().Watchlist)
}

// updateWatchlist applies fn to the selected currencies and saves them, under the file lock.
func updateWatchlist(fn func(*watchlist.List) error) error {
	return watchlist.Update(appConfig().Watchlist, fn)
}

func openStore(ctx context.Context) (*store.Store, error) {
	return store.Open(ctx, appConfig().Database)
}

// dedupOptions parses the -by flag value.
func dedupOptions(by string, restricted bool) (cambio.Options, error) {
	opts := cambio.Options{Restricted: restricted}
	switch strings.ToLower(by) {
	case "", "region", "country":
		opts.Dedup = cambio.ByRegion
	case "currency":
		opts.Dedup = cambio.ByCurrency
	default:
		return opts, fmt.Errorf("invalid -by %q, want region or currency", by)
	}
	return opts, nil
}

// renderMarkdown renders md for the terminal, unless -raw is set.
func renderMarkdown(md string) string {
	if *raw {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Debugf("cannot create markdown renderer: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debugf("cannot render markdown: %v", err)
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }
