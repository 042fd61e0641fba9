package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/feather-lang/greetbridge/harness"
)

func main() {
	var (
		pattern string
		verbose bool
	)

	config := func(args []string) harness.Config {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return harness.Config{
			TestPaths:   args,
			NamePattern: pattern,
			Output:      os.Stdout,
			ErrOutput:   os.Stderr,
			Verbose:     verbose,
			Logger:      slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		}
	}

	root := &cobra.Command{
		Use:   "harness",
		Short: "Conformance harness for the greeter bridge",
	}
	root.PersistentFlags().StringVar(&pattern, "run", "", "only run tests whose 'suite > name' matches this regexp")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report passing tests and log each case")

	root.AddCommand(&cobra.Command{
		Use:   "run <test-files-or-dirs>...",
		Short: "Run YAML test suites",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(harness.Run(config(args)))
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "list <test-files-or-dirs>...",
		Short: "List test case names",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(harness.List(config(args)))
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
