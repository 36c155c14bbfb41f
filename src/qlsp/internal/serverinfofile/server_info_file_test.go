package serverinfofile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    string
		wantErr bool
	}{
		{
			name: "path configured",
			yaml: "serverInfoFilePath: /my/sample/path/.qlsp",
			want: "/my/sample/path/.qlsp",
		},
		{
			name: "path omitted",
			yaml: "otherKey: /my/sample/path/.qlsp",
			want: "",
		},
		{
			name: "path empty",
			yaml: "serverInfoFilePath:\notherKey: sample",
			want: "",
		},
		{
			name: "incorrectly formatted entry",
			yaml: `
serverInfoFilePath:
  infofile: /sample/.file`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := config.NewYAML(config.Source(strings.NewReader(tt.yaml)))
			require.NoError(t, err)

			sif, err := New(Params{
				Config:    provider,
				Lifecycle: fxtest.NewLifecycle(t),
				Logger:    zap.NewNop().Sugar(),
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sif.(*module).infofile)
		})
	}
}

func TestOnStop(t *testing.T) {
	t.Run("file removed", func(t *testing.T) {
		tempFile, err := os.CreateTemp("", "test")
		require.NoError(t, err)
		tempFile.Close()
		defer os.Remove(tempFile.Name())

		m := module{
			logger:   zap.NewNop().Sugar(),
			infofile: tempFile.Name(),
		}

		assert.NoError(t, m.OnStop(context.Background()))
		_, err = os.Stat(tempFile.Name())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("file never written", func(t *testing.T) {
		m := module{
			logger:   zap.NewNop().Sugar(),
			infofile: filepath.Join(t.TempDir(), "missing"),
		}
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("disabled", func(t *testing.T) {
		m := module{logger: zap.NewNop().Sugar()}
		assert.NoError(t, m.OnStop(context.Background()))
	})
}

func TestUpdateField(t *testing.T) {
	t.Run("multiple successful updates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "info.json")
		m := module{
			infofile:     path,
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}

		steps := []struct {
			key        string
			value      string
			expectJSON string
		}{
			{key: "pid", value: "10", expectJSON: `{"pid":"10"}`},
			{key: "pid", value: "11", expectJSON: `{"pid":"11"}`},
			{key: "state", value: "ready", expectJSON: `{"pid":"11","state":"ready"}`},
		}

		for _, step := range steps {
			require.NoError(t, m.UpdateField(step.key, step.value))
			assert.Equal(t, step.value, m.fileContents[step.key])
			contents, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, step.expectJSON, string(contents))
		}
	})

	t.Run("batch update", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "info.json")
		m := module{
			infofile:     path,
			logger:       zap.NewNop().Sugar(),
			fileContents: map[string]string{"output:server": "/tmp/out"},
		}

		require.NoError(t, m.UpdateFields(map[string]string{"pid": "42", "state": "ready"}))
		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"output:server":"/tmp/out","pid":"42","state":"ready"}`, string(contents))
	})

	t.Run("disabled keeps contents in memory", func(t *testing.T) {
		m := module{
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}
		assert.NoError(t, m.UpdateField("pid", "1"))
		assert.Equal(t, "1", m.fileContents["pid"])
	})

	t.Run("file write failure", func(t *testing.T) {
		m := module{
			infofile:     t.TempDir(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}
		assert.Error(t, m.UpdateField("key", "value"))
	})
}
