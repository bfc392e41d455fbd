package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const apiKeyField = "api_key"

// FileStore reads and writes the API key in the YAML config file.
// Saving keeps every other key already present in the file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (store *FileStore) Path() string {
	return store.path
}

// LoadAPIKey returns an empty key when the file or the field does not exist.
func (store *FileStore) LoadAPIKey() (string, error) {
	values, err := store.read()
	if err != nil {
		return "", err
	}
	key, _ := values[apiKeyField].(string)
	return key, nil
}

// SaveAPIKey writes the key and restricts the file to its owner.
func (store *FileStore) SaveAPIKey(key string) error {
	values, err := store.read()
	if err != nil {
		return err
	}
	if values == nil {
		values = make(map[string]any)
	}
	values[apiKeyField] = key

	content, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(store.path), err)
	}
	if err := os.WriteFile(store.path, content, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", store.path, err)
	}
	// WriteFile keeps the mode of a file that already existed
	if err := os.Chmod(store.path, 0o600); err != nil {
		return fmt.Errorf("os.Chmod(%s) > %w", store.path, err)
	}
	return nil
}

func (store *FileStore) read() (map[string]any, error) {
	content, err := os.ReadFile(store.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", store.path, err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", store.path, err)
	}
	return values, nil
}
