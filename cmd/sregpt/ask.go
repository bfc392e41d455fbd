package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/at-ishikawa/sregpt/internal/config"
	"github.com/at-ishikawa/sregpt/internal/credential"
	"github.com/at-ishikawa/sregpt/internal/inference"
	"github.com/at-ishikawa/sregpt/internal/presenter"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type askOptions struct {
	shell   string
	model   string
	jsonOut bool
	cmdOnly bool
	output  presenter.Mode

	mode presenter.Mode
}

// selectMode resolves the output mode once, before anything else runs.
func selectMode(cmd *cobra.Command, opts askOptions) (presenter.Mode, error) {
	mode, err := presenter.SelectMode(opts.jsonOut, opts.cmdOnly)
	if err != nil {
		return "", err
	}
	if !cmd.Flags().Changed("output") {
		return mode, nil
	}
	if (opts.jsonOut || opts.cmdOnly) && mode != opts.output {
		return "", fmt.Errorf("--output %s conflicts with --%s", opts.output, mode)
	}
	return opts.output, nil
}

func runAsk(
	ctx context.Context,
	opts askOptions,
	stdin io.Reader,
	stderr io.Writer,
	console *presenter.Presenter,
	deps dependencies,
) error {
	if strings.TrimSpace(opts.shell) == "" {
		return fmt.Errorf("--shell must not be empty")
	}

	stdinBlob, err := readStdin(stdin)
	if err != nil {
		return fmt.Errorf("failed to read standard input: %w", err)
	}

	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	model := opts.model
	if model == "" {
		model = cfg.Model
	}
	slog.Default().Debug("configuration loaded",
		"path", loader.Path(),
		"model", model,
		"baseURL", cfg.BaseURL,
		"stdinBytes", len(stdinBlob),
	)

	resolver := credential.NewResolver(config.NewFileStore(loader.Path()), deps.prompter, console)
	apiKey, err := resolver.Resolve()
	if err != nil {
		return err
	}

	client := deps.newClient(apiKey, cfg)
	if closer, ok := client.(io.Closer); ok {
		defer func() {
			_ = closer.Close()
		}()
	}

	exchange := inference.NewExchange(inference.Question{
		Prompt: opts.shell,
		Stdin:  stdinBlob,
	})
	stopSpinner := startSpinner(stderr)
	raw, err := client.Complete(ctx, inference.CompleteRequest{
		Model:    model,
		Exchange: exchange,
	})
	stopSpinner()
	if err != nil {
		return fmt.Errorf("client.Complete() > %w", err)
	}

	answer, ok := inference.DecodeAnswer(raw)
	if !ok {
		slog.Default().Debug("model response is not a JSON object", "response", raw)
		return inference.ErrDecodeFailure
	}
	return console.Render(answer, opts.mode)
}

// readStdin returns piped input, or nothing when stdin is an interactive terminal.
func readStdin(in io.Reader) (string, error) {
	if in == nil {
		return "", nil
	}
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return "", nil
	}
	content, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// startSpinner animates on w while a request is in flight.
// The spinner stays silent unless w itself is a terminal.
func startSpinner(w io.Writer) func() {
	file, ok := w.(*os.File)
	if !ok {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(file))
	s.Suffix = " Asking SRE-GPT..."
	s.Start()
	return s.Stop
}

func errorMessage(err error) string {
	var serviceErr *inference.ServiceError
	switch {
	case errors.Is(err, presenter.ErrUsageConflict):
		return err.Error() + "."
	case errors.Is(err, credential.ErrNoKeyProvided):
		return "No key entered; aborting."
	case errors.Is(err, inference.ErrDecodeFailure):
		return "✖  Could not parse JSON response."
	case errors.As(err, &serviceErr):
		return "✖  Request failed: " + serviceErr.Error()
	default:
		return err.Error()
	}
}
