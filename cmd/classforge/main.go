// classforge/cmd/classforge/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Build-time version info, injected via ldflags:
//
//	go build -ldflags "-X main.version=... -X main.commit=... -X main.buildTime=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	verbose bool
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "classforge",
	Short: "classforge: deterministic utility-class to CSS compiler",
	Long: `classforge compiles Tailwind-style utility-class strings into a pair: a
generated identifier and the equivalent CSS stylesheet, correctly nested
under variant selectors. It also manages the W3C Design Tokens overlay that
customizes the compiler's built-in palette, spacing, and breakpoint tables.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		c := commit
		if len(c) > 7 {
			c = c[:7]
		}
		fmt.Printf("classforge version %s (%s) built %s\n", version, c, buildTime)
	},
}

// themeCmd groups the design-token overlay management subcommands (build,
// validate, search, init, diff) under one parent, separate from the
// class-compiling `compile` command.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the design-token overlay consumed by the compiler",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(themeCmd)

	_ = godotenv.Load() // optional .env in the working directory; absence is not an error
}

// setupLogging wires log/slog to a tint handler: colorized when stderr is a
// TTY, plain otherwise, matching the level the --verbose flag selects.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: "15:04:05",
	})
	log = slog.New(handler)
	slog.SetDefault(log)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
