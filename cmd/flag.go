package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cambio"
	"github.com/google/subcommands"
)

type flagCmd struct {
	width   int
	resolve bool
}

func (*flagCmd) Name() string     { return "flag" }
func (*flagCmd) Synopsis() string { return "print the flag image URL of countries" }
func (*flagCmd) Usage() string {
	return `cbx flag [-width <px>] [-resolve] <region code>...

  Prints the flag image URL of each two-letter region code. With -resolve, the
  image is checked and the region code is printed instead when it is missing.
`
}

func (c *flagCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "width", cambio.DefaultFlagWidth, "Flag image width in pixels")
	f.BoolVar(&c.resolve, "resolve", false, "Check that the image exists")
}

func (c *flagCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one region code is required.")
		return subcommands.ExitUsageError
	}
	appConfig() // sets the flag CDN
	for _, code := range f.Args() {
		if !c.resolve {
			fmt.Println(cambio.FlagURL(code, c.width))
			continue
		}
		img := cambio.ResolveFlag(ctx, fetcher().HTTP, code, c.width)
		if img.URL != "" {
			fmt.Println(img.URL)
		} else {
			fmt.Println(img.Fallback)
		}
	}
	return subcommands.ExitSuccess
}
