package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	theme "github.com/goliatone/go-theme"
)

func testManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":               "#123456",
			"sorttable-header-bg": "#eeeeee",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				ThemeStylesheetKey: "table.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"sorttable-header-bg": "#222222",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						ThemeStylesheetKey: "table.dark.css",
					},
				},
			},
		},
	}
}

func TestThemeConfig_BaseManifest(t *testing.T) {
	cfg, err := ThemeConfig(testManifest(), "")
	if err != nil {
		t.Fatalf("theme config: %v", err)
	}
	if got := ThemeStylesheet(cfg); got != "/assets/themes/acme/table.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("expected tokens mirrored as css vars, got %v", cfg.CSSVars)
	}
}

func TestThemeConfig_VariantOverrides(t *testing.T) {
	cfg, err := ThemeConfig(testManifest(), "dark")
	if err != nil {
		t.Fatalf("theme config: %v", err)
	}
	if got := ThemeStylesheet(cfg); got != "/assets/themes/acme/table.dark.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if cfg.Tokens["sorttable-header-bg"] != "#222222" {
		t.Fatalf("expected variant token override, got %v", cfg.Tokens)
	}
	if cfg.Tokens["brand"] != "#123456" {
		t.Fatalf("expected base token kept, got %v", cfg.Tokens)
	}
	if cfg.Variant != "dark" || cfg.Theme != "acme" {
		t.Fatalf("unexpected theme identity %s/%s", cfg.Theme, cfg.Variant)
	}
}

func TestThemeConfig_UnknownVariant(t *testing.T) {
	if _, err := ThemeConfig(testManifest(), "sepia"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}

func TestThemeStylesheet_NilConfig(t *testing.T) {
	if got := ThemeStylesheet(nil); got != "" {
		t.Fatalf("expected empty url, got %q", got)
	}
	if got := ThemeStylesheet(&theme.RendererConfig{}); got != "" {
		t.Fatalf("expected empty url without resolver, got %q", got)
	}
}

func TestCSSVarsBlock_SortedKeys(t *testing.T) {
	cfg := &theme.RendererConfig{CSSVars: map[string]string{"--b": "2", "--a": "1"}}
	want := ":root {\n\t--a: 1;\n\t--b: 2;\n}"
	if got := CSSVarsBlock(cfg); got != want {
		t.Fatalf("css vars mismatch\nwant: %q\n got: %q", want, got)
	}
	if got := CSSVarsBlock(nil); got != "" {
		t.Fatalf("expected empty block for nil config, got %q", got)
	}
}

type stubSelector struct {
	selection *theme.Selection
	err       error
	calls     [][2]string
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, [2]string{name, variant})
	return s.selection, s.err
}

func TestSelectTheme_UsesSelection(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: testManifest(),
	}}

	cfg, err := SelectTheme(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("select theme: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != [2]string{"acme", "dark"} {
		t.Fatalf("unexpected selector calls %v", selector.calls)
	}
	if got := ThemeStylesheet(cfg); got != "/assets/themes/acme/table.dark.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
}

func TestSelectTheme_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := SelectTheme(&stubSelector{err: boom}, "acme", "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}
}

func TestLoadManifest_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("name: acme\nversion: 1.0.0\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if manifest.Name != "acme" {
		t.Fatalf("unexpected manifest name %q", manifest.Name)
	}
}
