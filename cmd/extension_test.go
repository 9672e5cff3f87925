package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestRegistered(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("cbx", flag.ContinueOnError), "cbx")
	Register(c)
	for _, name := range []string{"countries", "select", "convert", "watch", "quotes", "topic"} {
		if !Registered(c, name) {
			t.Errorf("Registered(%q) = false want true", name)
		}
	}
	if Registered(c, "hello") {
		t.Errorf("Registered(hello) = true want false")
	}
}

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvWatchlistFile, EnvWatchlistFile, EnvVerbose, EnvVerbose)

	helloPath := filepath.Join(tempDir, "cbx-hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write cbx-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile cbx-hello: %v", err)
	}

	cbxPath := filepath.Join(tempDir, "cbx")
	build = exec.Command("go", "build", "-o", cbxPath, "../cbx")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile cbx: %v", err)
	}

	watchlistPath := filepath.Join(tempDir, "selected.yaml")
	cbx := exec.Command(cbxPath, "-watchlist", watchlistPath, "-verbose", "hello", "world")
	cbx.Env = []string{
		"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		"XDG_CONFIG_HOME=" + filepath.Join(tempDir, "config"),
	}
	var stdout, stderr bytes.Buffer
	cbx.Stdout = &stdout
	cbx.Stderr = &stderr
	if err := cbx.Run(); err != nil {
		t.Fatalf("cbx command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvWatchlistFile + "=" + watchlistPath,
		EnvVerbose + "=true",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}
