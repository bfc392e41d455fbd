package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/at-ishikawa/sregpt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want: &Config{
				Model:   "gpt-4o-mini",
				BaseURL: "https://api.openai.com/v1",
				Timeout: 60 * time.Second,
			},
		},
		{
			name: "valid config file with custom values",
			configContent: `api_key: sk-test
model: gpt-4o
base_url: http://localhost:11434/v1
timeout: 15s
`,
			want: &Config{
				Model:   "gpt-4o",
				BaseURL: "http://localhost:11434/v1",
				Timeout: 15 * time.Second,
			},
		},
		{
			name: "key-only config file from a first run",
			configContent: `api_key: sk-test
`,
			want: &Config{
				Model:   "gpt-4o-mini",
				BaseURL: "https://api.openai.com/v1",
				Timeout: 60 * time.Second,
			},
		},
		{
			name: "environment overrides the config file",
			configContent: `model: gpt-4o
`,
			env: map[string]string{
				"OPENAI_MODEL":    "gpt-4.1-mini",
				"OPENAI_BASE_URL": "https://proxy.example.com/v1",
			},
			want: &Config{
				Model:   "gpt-4.1-mini",
				BaseURL: "https://proxy.example.com/v1",
				Timeout: 60 * time.Second,
			},
		},
		{
			name: "invalid YAML format",
			configContent: `model: gpt-4o
base_url: [unterminated
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "empty model",
			configContent: `model: ""
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"model is a required field",
			},
		},
		{
			name: "invalid base URL",
			configContent: `base_url: not a url
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"base_url must be a valid URL",
			},
		},
		{
			name: "bare integer timeout is read as nanoseconds",
			configContent: `timeout: 30
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"timeout must be 1s or greater",
			},
		},
		{
			name: "sub-second timeout",
			configContent: `timeout: 500ms
`,
			wantErr: true,
			wantErrorContains: []string{
				"timeout must be 1s or greater",
			},
		},
		{
			name: "one second timeout",
			configContent: `timeout: 1s
`,
			want: &Config{
				Model:   "gpt-4o-mini",
				BaseURL: "https://api.openai.com/v1",
				Timeout: time.Second,
			},
		},
		{
			name: "negative timeout",
			configContent: `timeout: -5s
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"timeout",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_MODEL", "")
			t.Setenv("OPENAI_BASE_URL", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			configPath := testutil.ConfigPath(t)
			if tt.configContent != "" {
				configPath = testutil.SetupTestConfig(t, tt.configContent)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			assert.Equal(t, configPath, loader.Path())

			got, err := loader.Load()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Run("XDG_CONFIG_HOME is preferred", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		got, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/xdg", "sregpt", "config.yaml"), got)
	})

	t.Run("falls back to the home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		got, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "sregpt", "config.yaml"), got)
	})
}

func TestNewConfigLoader_DefaultPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "sregpt", "config.yaml"), loader.Path())
}
