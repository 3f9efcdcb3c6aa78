package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/picatz/b64/pkg/base64"
	"github.com/urfave/cli/v3"
)

// app holds the streams and logger shared by every subcommand.
type app struct {
	stdin    io.Reader
	stdout   io.Writer
	logger   *log.Logger
	terminal bool
}

func (a *app) command(version string) *cli.Command {
	return &cli.Command{
		Name:    "b64",
		Usage:   "Standard base64 encoding and decoding",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("B64_LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("invalid log level %q: %w", cmd.String("log-level"), err)
			}
			a.logger.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode a file (or stdin) to base64",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "newline",
						Aliases: []string{"n"},
						Usage:   "Always end the output with a newline",
					},
				},
				Action: a.encodeAction,
			},
			{
				Name:      "decode",
				Usage:     "Decode base64 from a file (or stdin)",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "trusted",
						Usage: "Skip validation of the input",
					},
				},
				Action: a.decodeAction,
			},
			{
				Name:      "check",
				Usage:     "Check that a file (or stdin) is well-formed base64",
				ArgsUsage: "[file]",
				Action:    a.checkAction,
			},
		},
	}
}

// readInput reads the whole named file, or stdin when the name is empty or "-".
func (a *app) readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func (a *app) encodeAction(ctx context.Context, cmd *cli.Command) error {
	input, err := a.readInput(cmd.Args().First())
	if err != nil {
		return err
	}

	encoded := base64.Encode(input)
	a.logger.Debug("encoded input", "bytes", len(input), "chars", len(encoded))

	if a.terminal || cmd.Bool("newline") {
		encoded += "\n"
	}

	_, err = io.WriteString(a.stdout, encoded)
	return err
}

func (a *app) decodeAction(ctx context.Context, cmd *cli.Command) error {
	input, err := a.readInput(cmd.Args().First())
	if err != nil {
		return err
	}

	text := strings.TrimSpace(string(input))

	var decoded []byte
	if cmd.Bool("trusted") {
		decoded = base64.DecodeTrusted(text)
	} else {
		decoded, err = base64.Decode(text)
		if err != nil {
			a.logger.Error("failed to decode input", "err", err)
			return err
		}
	}
	a.logger.Debug("decoded input", "chars", len(text), "bytes", len(decoded))

	_, err = a.stdout.Write(decoded)
	return err
}

func (a *app) checkAction(ctx context.Context, cmd *cli.Command) error {
	input, err := a.readInput(cmd.Args().First())
	if err != nil {
		return err
	}

	text := strings.TrimSpace(string(input))
	if err := base64.Validate(text); err != nil {
		return err
	}
	a.logger.Info("input is valid", "chars", len(text), "bytes", base64.DecodedLen(text))

	return nil
}
