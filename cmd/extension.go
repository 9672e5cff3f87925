package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
)

// Environment passed to extensions, so they share the cbx configuration.
const (
	EnvConfigFile    = "CAMBIO_CONFIG_FILE"
	EnvWatchlistFile = "CAMBIO_WATCHLIST_FILE"
	EnvDatabaseFile  = "CAMBIO_DATABASE_FILE"
	EnvVerbose       = "CAMBIO_VERBOSE"
)

// Registered reports whether name is a subcommand of c.
func Registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// RunExtension attempts to find and execute an external cbx-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "cbx-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debugf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	c := appConfig()
	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvConfigFile+"="+*configFile,
		EnvWatchlistFile+"="+c.Watchlist,
		EnvDatabaseFile+"="+c.Database,
		EnvVerbose+"="+strconv.FormatBool(*verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
