package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, contents := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
	}
	return dir
}

func TestNewConfigFromDir(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		env         map[string]string
		expectError bool
		check       func(t *testing.T, cfg Config)
	}{
		{
			name: "overlay overrides base",
			files: map[string]string{
				"meta.yaml":  "files:\n  - base.yaml\n  - ${QLSP_ENVIRONMENT:local}.yaml",
				"base.yaml":  "logging:\n  level: info\nlanguageServer:\n  timeouts:\n    execute: 10s",
				"local.yaml": "logging:\n  level: debug",
			},
			env: map[string]string{"QLSP_ENVIRONMENT": "local"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "debug", cfg.Get("logging.level").String())
				var d time.Duration
				require.NoError(t, cfg.Get("languageServer.timeouts.execute").Populate(&d))
				assert.Equal(t, 10*time.Second, d)
			},
		},
		{
			name: "missing overlay is skipped",
			files: map[string]string{
				"meta.yaml": "files: [base.yaml, development.yaml]",
				"base.yaml": "logging:\n  level: warn",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "warn", cfg.Get("logging.level").String())
			},
		},
		{
			name: "environment expansion",
			files: map[string]string{
				"meta.yaml": "files: [base.yaml]",
				"base.yaml": "languageServer:\n  bundlePath: ${QLSP_TEST_BUNDLE:/default/server.js}",
			},
			env: map[string]string{"QLSP_TEST_BUNDLE": "/opt/aws/server.js"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "/opt/aws/server.js", cfg.Get("languageServer.bundlePath").String())
			},
		},
		{
			name: "no files found",
			files: map[string]string{
				"meta.yaml": "files: [base.yaml]",
			},
			expectError: true,
		},
		{
			name:        "no meta file",
			files:       map[string]string{},
			expectError: true,
		},
		{
			name: "malformed files list",
			files: map[string]string{
				"meta.yaml": "files:\n  nested: true",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			dir := writeConfigDir(t, tt.files)

			provider, err := newConfigFromDir(dir)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, provider)
				return
			}
			require.NoError(t, err)
			cfg := provider.(Config)
			assert.Equal(t, "config", cfg.Name())
			tt.check(t, cfg)
		})
	}
}

func TestNewConfig(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files: [base.yaml]",
		"base.yaml": "client:\n  name: qlsp",
	})
	t.Setenv(_envConfigDir, dir)

	provider, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "qlsp", provider.Get("client.name").String())
}

func TestGetConfigDir(t *testing.T) {
	tests := []struct {
		name           string
		envValue       string
		expectedResult string
	}{
		{
			name:           "returns environment variable when set",
			envValue:       "/custom/config/path",
			expectedResult: "/custom/config/path",
		},
		{
			name:           "returns default path when environment variable not set",
			expectedResult: _defaultConfigDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(_envConfigDir, tt.envValue)
			assert.Equal(t, tt.expectedResult, getConfigDir())
		})
	}
}
