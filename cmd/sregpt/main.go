package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/at-ishikawa/sregpt/internal/config"
	"github.com/at-ishikawa/sregpt/internal/credential"
	"github.com/at-ishikawa/sregpt/internal/inference"
	"github.com/at-ishikawa/sregpt/internal/inference/openai"
	"github.com/at-ishikawa/sregpt/internal/presenter"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configFile string
)

// dependencies are the collaborators replaced in tests
type dependencies struct {
	newClient func(apiKey string, cfg *config.Config) inference.Client
	prompter  credential.SecretPrompter
}

func main() {
	deps := dependencies{
		newClient: func(apiKey string, cfg *config.Config) inference.Client {
			return openai.NewClient(apiKey, cfg.BaseURL, cfg.Timeout)
		},
		prompter: credential.NewTerminalPrompter(os.Stdin, os.Stdout, credential.OpenTTY),
	}
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, deps))
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer, deps dependencies) int {
	console := presenter.New(stdout, useColor(stdout))

	rootCommand := newRootCommand(stdin, stderr, console, deps)
	rootCommand.SetArgs(args)
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)
	if err := rootCommand.Execute(); err != nil {
		console.Error(errorMessage(err))
		return 1
	}
	return 0
}

func newRootCommand(stdin io.Reader, stderr io.Writer, console *presenter.Presenter, deps dependencies) *cobra.Command {
	var debugMode bool
	var opts askOptions

	rootCommand := &cobra.Command{
		Use:           "sregpt",
		Short:         "Ask SRE-GPT for a shell command and print it in the requested format",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(stderr, debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := selectMode(cmd, opts)
			if err != nil {
				return err
			}
			opts.mode = mode
			return runAsk(cmd.Context(), opts, stdin, stderr, console, deps)
		},
	}

	flags := rootCommand.Flags()
	flags.StringVarP(&opts.shell, "shell", "s", "", "Prompt / question")
	flags.StringVar(&opts.model, "model", "", "OpenAI model name (default from config, "+inference.DefaultModel+" if unset)")
	flags.BoolVar(&opts.jsonOut, "json", false, "Print raw JSON output")
	flags.BoolVar(&opts.cmdOnly, "cmd-only", false, "Print only the generated command")
	opts.output = presenter.ModePlain
	flags.Var(&opts.output, "output", "Output mode: plain, cmd-only or json")
	_ = rootCommand.MarkFlagRequired("shell")

	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(w io.Writer, debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func useColor(w io.Writer) bool {
	if _, ok := w.(*os.File); !ok {
		return false
	}
	return !color.NoColor
}
