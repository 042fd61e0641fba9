package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/feather-lang/greetbridge"
	"github.com/feather-lang/greetbridge/internal/config"
)

var errNoSubject = errors.New("no subject given: pass one as an argument or pipe it on stdin")

type output struct {
	Subject  string `json:"subject"`
	Greeting string `json:"greeting"`
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "greet [subject]",
		Short: "Greet a subject through the native greeter",
		Long: `greet constructs a native greeter from the subject and prints its greeting.

Without an argument the subject is read from stdin when stdin is not a
terminal. One trailing newline is removed from piped input; everything
else is passed to the native object verbatim.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level}))

			subject, err := readSubject(args, stdin)
			if err != nil {
				return err
			}
			logger.Debug("subject read", slog.Int("bytes", len(subject)), slog.Bool("utf16", cfg.UTF16))

			msg, err := greet(subject, cfg.UTF16)
			if err != nil {
				logger.Error("greeting failed", slog.Any("error", err))
				return err
			}

			if cfg.Format == config.FormatJSON {
				enc := json.NewEncoder(stdout)
				return enc.Encode(output{Subject: subject, Greeting: msg})
			}
			_, err = fmt.Fprintln(stdout, msg)
			return err
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&configFile, "config", "", "path to a YAML config file")
	cmd.Flags().String("format", config.DefaultFormat, "output format: text or json")
	cmd.Flags().Bool("utf16", false, "pass the subject through the UTF-16 bridge entry points")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	return cmd
}

func readSubject(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoSubject
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading subject: %w", err)
	}
	s := string(data)
	if s == "" {
		return "", errNoSubject
	}
	if strings.HasSuffix(s, "\r\n") {
		return strings.TrimSuffix(s, "\r\n"), nil
	}
	return strings.TrimSuffix(s, "\n"), nil
}

func greet(subject string, viaUTF16 bool) (string, error) {
	var (
		g   *greetbridge.Greeter
		err error
	)
	if viaUTF16 {
		var units []uint16
		units, err = greetbridge.EncodeUTF16(subject)
		if err == nil {
			g, err = greetbridge.NewUTF16(units)
		}
	} else {
		g, err = greetbridge.New(subject)
	}
	if err != nil {
		return "", err
	}
	defer g.Close()

	if !viaUTF16 {
		return g.Greet()
	}
	units, err := g.GreetUTF16()
	if err != nil {
		return "", err
	}
	return greetbridge.DecodeUTF16(units)
}
