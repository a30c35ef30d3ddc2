package config

import (
	"bytes"
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/sketchfuse/merger"
	"gopkg.in/yaml.v3"
	"os"
	"sort"
)

// DefaultURL is the configuration location used when none is supplied
const DefaultURL = "sketchfuse.yaml"

// Config controls a merge
type Config struct {
	// ReuseStyleID makes merged swatches and shared styles keep the source identifier
	ReuseStyleID bool `yaml:"reuseStyleID"`
	// SymbolsPage names the page receiving masters with no counterpart in the output
	SymbolsPage string `yaml:"symbolsPage"`
	// ReplaceFirst substitutes only the first occurrence of every placeholder
	ReplaceFirst bool `yaml:"replaceFirst"`
	// Data holds placeholder values
	Data map[string]string `yaml:"data,omitempty"`
	// DataURL points at a JSON or YAML file with more placeholder values; Data wins on conflicts
	DataURL string `yaml:"dataURL,omitempty"`
}

func Default() *Config {
	return &Config{
		SymbolsPage: merger.DefaultSymbolsPage,
		Data:        map[string]string{},
	}
}

// Load reads the configuration at URL; a missing file yields the defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	exists, err := fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check config %v: %w", URL, err)
	}
	if !exists {
		return Default(), nil
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if cfg.SymbolsPage == "" {
		cfg.SymbolsPage = merger.DefaultSymbolsPage
	}
	if cfg.Data == nil {
		cfg.Data = map[string]string{}
	}
	if cfg.DataURL != "" {
		values, err := LoadData(ctx, fs, cfg.DataURL)
		if err != nil {
			return nil, err
		}
		for key, value := range values {
			if _, ok := cfg.Data[key]; !ok {
				cfg.Data[key] = value
			}
		}
	}
	return cfg, nil
}

// Save writes cfg to URL. Local files are written to a temporary file and renamed into place;
// other storages receive a single upload.
func Save(ctx context.Context, fs afs.Service, cfg *Config, URL string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if url.Scheme(URL, file.Scheme) != file.Scheme {
		if err = fs.Upload(ctx, URL, os.FileMode(0o644), bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to upload config %v: %w", URL, err)
		}
		return nil
	}
	tmp := URL + ".tmp"
	if err = fs.Upload(ctx, tmp, os.FileMode(0o644), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload config %v: %w", tmp, err)
	}
	if err = os.Rename(url.Path(tmp), url.Path(URL)); err != nil {
		_ = os.Remove(url.Path(tmp))
		return fmt.Errorf("failed to rename config to %v: %w", URL, err)
	}
	return nil
}

// LoadData reads placeholder values from a flat JSON or YAML object.
// Scalar values are formatted as text.
func LoadData(ctx context.Context, fs afs.Service, URL string) (map[string]string, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download data %v: %w", URL, err)
	}
	var values map[string]interface{}
	if err = yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode data %v: %w", URL, err)
	}
	result := make(map[string]string, len(values))
	for key, value := range values {
		switch actual := value.(type) {
		case nil:
			result[key] = ""
		case map[string]interface{}, []interface{}:
			return nil, fmt.Errorf("invalid data %v: value of %v is not a scalar", URL, key)
		default:
			result[key] = fmt.Sprint(actual)
		}
	}
	return result, nil
}

// Options converts the configuration into merger options
func (c *Config) Options() []merger.Option {
	return []merger.Option{
		merger.WithReuseStyleID(c.ReuseStyleID),
		merger.WithSymbolsPage(c.SymbolsPage),
		merger.WithReplaceFirst(c.ReplaceFirst),
		merger.WithData(c.Data),
	}
}

// Keys returns the placeholder keys in order
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.Data))
	for key := range c.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
