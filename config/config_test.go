package config_test

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/sketchfuse/config"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		description string
		content     string
		data        string
		expect      *config.Config
		hasError    bool
	}{
		{
			description: "missing file yields defaults",
			expect:      config.Default(),
		},
		{
			description: "explicit values",
			content: `reuseStyleID: true
symbolsPage: Library
replaceFirst: true
data:
  name: World
`,
			expect: &config.Config{ReuseStyleID: true, SymbolsPage: "Library", ReplaceFirst: true, Data: map[string]string{"name": "World"}},
		},
		{
			description: "empty symbols page falls back",
			content:     "symbolsPage: \"\"\n",
			expect:      config.Default(),
		},
		{
			description: "data file merged",
			content: `data:
  name: World
dataURL: DATA
`,
			data:   `{"name": "Ignored", "count": 3, "enabled": true}`,
			expect: &config.Config{SymbolsPage: "Symbols", Data: map[string]string{"name": "World", "count": "3", "enabled": "true"}, DataURL: "DATA"},
		},
		{
			description: "invalid yaml",
			content:     "reuseStyleID: [",
			hasError:    true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			dir := t.TempDir()
			URL := filepath.Join(dir, config.DefaultURL)
			if tc.content != "" {
				content := tc.content
				if tc.data != "" {
					dataURL := filepath.Join(dir, "data.json")
					require.NoError(t, os.WriteFile(dataURL, []byte(tc.data), 0o644))
					tc.expect.DataURL = dataURL
					content = content[:len(content)-len("DATA\n")] + dataURL + "\n"
				}
				require.NoError(t, os.WriteFile(URL, []byte(content), 0o644))
			}
			actual, err := config.Load(context.Background(), afs.New(), URL)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		description string
		URL         string
		path        string
	}{
		{
			description: "local path",
			URL:         filepath.Join(dir, "nested", config.DefaultURL),
			path:        filepath.Join(dir, "nested", config.DefaultURL),
		},
		{
			description: "file url",
			URL:         "file://" + filepath.Join(dir, "url", config.DefaultURL),
			path:        filepath.Join(dir, "url", config.DefaultURL),
		},
		{
			description: "memory storage",
			URL:         "mem://localhost/sketchfuse/" + config.DefaultURL,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			ctx := context.Background()
			fs := afs.New()
			cfg := &config.Config{ReuseStyleID: true, SymbolsPage: "Library", Data: map[string]string{"name": "World"}}
			require.NoError(t, config.Save(ctx, fs, config.Default(), tc.URL))
			require.NoError(t, config.Save(ctx, fs, cfg, tc.URL), "existing config is replaced")

			if tc.path != "" {
				info, err := os.Stat(tc.path)
				require.NoError(t, err)
				assert.True(t, info.Mode().IsRegular())
				_, err = os.Stat(tc.path + ".tmp")
				assert.True(t, os.IsNotExist(err))
			}

			actual, err := config.Load(ctx, fs, tc.URL)
			require.NoError(t, err)
			assert.EqualValues(t, cfg, actual)
		})
	}
}

func TestLoadData(t *testing.T) {
	tests := []struct {
		description string
		content     string
		expect      map[string]string
		hasError    bool
	}{
		{
			description: "json",
			content:     `{"name": "World", "year": 2022}`,
			expect:      map[string]string{"name": "World", "year": "2022"},
		},
		{
			description: "yaml",
			content:     "name: World\nempty:\n",
			expect:      map[string]string{"name": "World", "empty": ""},
		},
		{
			description: "nested values rejected",
			content:     `{"user": {"name": "World"}}`,
			hasError:    true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			URL := filepath.Join(t.TempDir(), "data")
			require.NoError(t, os.WriteFile(URL, []byte(tc.content), 0o644))
			actual, err := config.LoadData(context.Background(), afs.New(), URL)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := &config.Config{SymbolsPage: "Library", Data: map[string]string{"b": "2", "a": "1"}}
	assert.Len(t, cfg.Options(), 4)
	assert.EqualValues(t, []string{"a", "b"}, cfg.Keys())
}
