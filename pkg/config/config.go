// Package config loads rendering settings from YAML, TOML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sorttable/pkg/assets"
	"github.com/goliatone/go-sorttable/pkg/table"
)

// ErrUnsupportedFormat is returned for config files that are not YAML, TOML
// or JSON.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Config is the file representation of a render run.
type Config struct {
	Table    table.Config `json:"table" yaml:"table" toml:"table"`
	Init     Init         `json:"init" yaml:"init" toml:"init"`
	Page     Page         `json:"page" yaml:"page" toml:"page"`
	Theme    Theme        `json:"theme" yaml:"theme" toml:"theme"`
	Sanitize bool         `json:"sanitize" yaml:"sanitize" toml:"sanitize"`

	// baseDir resolves relative paths found in the file.
	baseDir string
}

// Init mirrors table.InitOptions.
type Init struct {
	Sortable      *bool    `json:"sortable" yaml:"sortable" toml:"sortable"`
	SortIndex     *int     `json:"sortIndex" yaml:"sortIndex" toml:"sortIndex"`
	NoInitialSort bool     `json:"noInitialSort" yaml:"noInitialSort" toml:"noInitialSort"`
	SortReverse   bool     `json:"sortReverse" yaml:"sortReverse" toml:"sortReverse"`
	Callback      string   `json:"callback" yaml:"callback" toml:"callback"`
	FunctionName  string   `json:"functionName" yaml:"functionName" toml:"functionName"`
	Parsers       []string `json:"parsers" yaml:"parsers" toml:"parsers"`
	DefaultParser string   `json:"defaultParser" yaml:"defaultParser" toml:"defaultParser"`
}

// Page holds document level settings used by the page renderer.
type Page struct {
	Title         string   `json:"title" yaml:"title" toml:"title"`
	Lang          string   `json:"lang" yaml:"lang" toml:"lang"`
	Stylesheets   []string `json:"stylesheets" yaml:"stylesheets" toml:"stylesheets"`
	WidgetScripts []string `json:"widgetScripts" yaml:"widgetScripts" toml:"widgetScripts"`
}

// Theme selects a go-theme manifest and variant.
type Theme struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Variant  string `json:"variant" yaml:"variant" toml:"variant"`
	Manifest string `json:"manifest" yaml:"manifest" toml:"manifest"`
}

// Load reads path and decodes it according to its extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes data in the named format: yaml, yml, toml or json.
func Parse(data []byte, format string) (*Config, error) {
	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	var err error
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, cfg)
	case "toml":
		var meta toml.MetaData
		meta, err = toml.Decode(string(data), cfg)
		if err == nil {
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown key %q", undecoded[0].String())
			}
		}
	case "json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", format, err)
	}
	return cfg, nil
}

// TableConfig returns the table configuration with defaults applied.
func (c *Config) TableConfig() table.Config {
	if c == nil {
		return table.Config{}.WithDefaults()
	}
	return c.Table.WithDefaults()
}

// InitOptions converts the init section.
func (c *Config) InitOptions() table.InitOptions {
	if c == nil {
		return table.InitOptions{}
	}
	in := c.Init
	return table.InitOptions{
		Callback:      in.Callback,
		FunctionName:  in.FunctionName,
		Sortable:      in.Sortable,
		SortIndex:     in.SortIndex,
		NoInitialSort: in.NoInitialSort,
		SortReverse:   in.SortReverse,
		Parsers:       append([]string(nil), in.Parsers...),
		DefaultParser: in.DefaultParser,
	}
}

// ThemeConfig loads the configured manifest and flattens the variant. It
// returns nil without error when no manifest is configured. A manifest path
// relative to the config file is resolved against the file's directory.
func (c *Config) ThemeConfig() (*theme.RendererConfig, error) {
	if c == nil || strings.TrimSpace(c.Theme.Manifest) == "" {
		return nil, nil
	}
	path := c.Theme.Manifest
	if !filepath.IsAbs(path) && c.baseDir != "" {
		path = filepath.Join(c.baseDir, path)
	}

	manifest, err := assets.LoadManifest(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if name := strings.TrimSpace(c.Theme.Name); name != "" && name != manifest.Name {
		return nil, fmt.Errorf("config: theme %q requested but manifest %s declares %q", name, path, manifest.Name)
	}
	cfg, err := assets.ThemeConfig(manifest, c.Theme.Variant)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
