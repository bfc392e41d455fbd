package credential

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/credential/mock_credential.go -package=mock_credential

// EnvAPIKey is the environment variable that takes precedence over the config file.
const EnvAPIKey = "OPENAI_API_KEY"

var ErrNoKeyProvided = errors.New("no API key provided")

// KeyStore persists the API key between runs
type KeyStore interface {
	Path() string
	LoadAPIKey() (string, error)
	SaveAPIKey(key string) error
}

// SecretPrompter asks the user for a value without echoing it
type SecretPrompter interface {
	PromptSecret(label string) (string, error)
}

// Console shows the first-run setup notices
type Console interface {
	Warning(message string)
	Success(message string)
}

type Resolver struct {
	lookupEnv func(string) (string, bool)
	store     KeyStore
	prompter  SecretPrompter
	console   Console
}

func NewResolver(store KeyStore, prompter SecretPrompter, console Console) *Resolver {
	return &Resolver{
		lookupEnv: os.LookupEnv,
		store:     store,
		prompter:  prompter,
		console:   console,
	}
}

// Resolve returns the API key from the environment, then the config file,
// and finally asks for it and saves it for the next run.
func (resolver *Resolver) Resolve() (string, error) {
	if key, ok := resolver.lookupEnv(EnvAPIKey); ok && key != "" {
		slog.Default().Debug("API key resolved", "source", "env", "variable", EnvAPIKey)
		return key, nil
	}

	key, err := resolver.store.LoadAPIKey()
	if err != nil {
		return "", fmt.Errorf("store.LoadAPIKey() > %w", err)
	}
	if key != "" {
		slog.Default().Debug("API key resolved", "source", "file", "path", resolver.store.Path())
		return key, nil
	}

	resolver.console.Warning("⚙️  OpenAI API key not found. Let's configure it now.")
	key, err = resolver.prompter.PromptSecret("🔑 Enter your OpenAI API key")
	if err != nil {
		return "", fmt.Errorf("prompter.PromptSecret() > %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrNoKeyProvided
	}

	if err := resolver.store.SaveAPIKey(key); err != nil {
		return "", fmt.Errorf("store.SaveAPIKey() > %w", err)
	}
	resolver.console.Success(fmt.Sprintf("✓ API key stored in %s with 0600 perms.", resolver.store.Path()))
	return key, nil
}
