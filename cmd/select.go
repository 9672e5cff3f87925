package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/etnz/cambio"
	"github.com/etnz/cambio/renderer"
	"github.com/etnz/cambio/watchlist"
	"github.com/google/subcommands"
)

// selectCmd holds the flags for the 'select' subcommand.
type selectCmd struct {
	by         string
	restricted bool
}

func (*selectCmd) Name() string { return "select" }
func (*selectCmd) Synopsis() string {
	return "interactively pick a country and add its currency to the selection"
}
func (*selectCmd) Usage() string {
	return `cbx select [-by region|currency] [-restricted]

  Opens the country picker. Each line typed is a search query, the list is
  refreshed after every query. Commands:

    :<n>     pick the n-th country of the list
    :retry   reload the directory after a failure
    :q       close the picker without picking

  The currency of the picked country is added to the selected currencies.
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "region", "Keep one entry per 'region' or per 'currency'")
	f.BoolVar(&c.restricted, "restricted", true, "Only list currencies that can be converted")
}

func (c *selectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := dedupOptions(c.by, c.restricted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var saveErr error
	s := cambio.NewSelector(newDirectory(opts), func(e cambio.Entity) {
		added := false
		saveErr = updateWatchlist(func(l *watchlist.List) error {
			_, added = l.Add(e)
			return nil
		})
		if saveErr != nil {
			return
		}
		if !added {
			fmt.Printf("%s já está na seleção\n", e.Currency.Code)
			return
		}
		fmt.Printf("%s (%s) adicionado à seleção\n", e.Currency.Code, e.Name)
	})

	r := &picker{s: s, out: os.Stdout, render: renderMarkdown}
	if err := r.run(ctx, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if saveErr != nil {
		fmt.Fprintf(os.Stderr, "Error saving selected currencies: %v\n", saveErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// picker runs a selector on a line based terminal.
type picker struct {
	s      *cambio.Selector
	out    io.Writer
	render func(md string) string
}

const pickerHelp = "Digite para buscar um país (:<n> escolhe, :retry recarrega, :q sai)"

// run reads commands until the selector closes or in is exhausted.
func (p *picker) run(ctx context.Context, in io.Reader) error {
	p.s.Show()
	defer p.s.Close()
	fmt.Fprintln(p.out, pickerHelp)

	scanner := bufio.NewScanner(in)
	for p.s.State() != cambio.Closed && scanner.Scan() {
		line := scanner.Text()
		cmd, isCmd := strings.CutPrefix(strings.TrimSpace(line), ":")
		switch {
		case isCmd && cmd == "q":
			p.s.Close()
		case isCmd && cmd == "retry":
			if err := p.s.Retry(ctx); err != nil {
				log.Debugf("retry failed: %v", err)
			}
			p.show()
		case isCmd:
			p.pick(cmd)
		default:
			if _, err := p.s.Search(ctx, line); err != nil {
				log.Debugf("search %q: %v", line, err)
			}
			p.show()
		}
	}
	return scanner.Err()
}

// pick selects the n-th visible entity, n is 1-based.
func (p *picker) pick(arg string) {
	n, err := strconv.Atoi(arg)
	visible := p.s.Visible()
	if err != nil || n < 1 || n > len(visible) {
		fmt.Fprintf(p.out, "escolha inválida %q, digite :1 a :%d\n", arg, len(visible))
		return
	}
	p.s.Select(visible[n-1])
}

func (p *picker) show() {
	fmt.Fprint(p.out, p.render(renderer.RenderCountries(renderer.NewCountries(p.s, 0))))
}
