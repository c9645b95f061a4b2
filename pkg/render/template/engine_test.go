package template_test

import (
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sorttable/pkg/render/template/gotemplate"
	"github.com/goliatone/go-sorttable/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(gotemplate.WithFS(embeddedTemplates))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func assertRendered(t *testing.T, golden string, render func(io.Writer) (string, error)) {
	t.Helper()
	result, written := testsupport.CaptureTemplateOutput(t, render)
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", golden))
	if result != want {
		t.Fatalf("render mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)
	assertRendered(t, "hello.golden", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("testdata/templates/hello", map[string]any{"name": "Ada"}, w)
	})
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	assertRendered(t, "use-global.golden", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("testdata/templates/use-global.tmpl", nil, w)
	})
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	assertRendered(t, "use-filter.golden", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("testdata/templates/use-filter", map[string]any{"name": "Ada"}, w)
	})

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatal("expected duplicate filter registration to fail")
	}
}

func TestEngine_JSStringFilter(t *testing.T) {
	engine := newEngine(t)
	assertRendered(t, "use-jsstring.golden", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("testdata/templates/use-jsstring", map[string]any{"id": "it's </b>"}, w)
	})
}

func TestEngine_RenderInline(t *testing.T) {
	engine := newEngine(t)
	out, err := engine.Render("{% if on %}yes{% else %}no{% endif %}", map[string]any{"on": true})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if out != "yes" {
		t.Fatalf("unexpected inline output %q", out)
	}

	type payload struct {
		TableID string `json:"table_id"`
	}
	out, err = engine.RenderString("{{ table_id }}", payload{TableID: "people"})
	if err != nil {
		t.Fatalf("render struct data: %v", err)
	}
	if out != "people" {
		t.Fatalf("expected struct fields addressed by json tag, got %q", out)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error without template source")
	}
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("testdata/templates/missing", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestEscapeJSString(t *testing.T) {
	cases := map[string]string{
		`plain`:       `plain`,
		`a"b`:         `a\"b`,
		"line\nbreak": `line\nbreak`,
		`back\slash`:  `back\\slash`,
		"x&y":         `x\u0026y`,
		"a\u2028b":    `a\u2028b`,
	}
	for in, want := range cases {
		if got := gotemplate.EscapeJSString(in); got != want {
			t.Errorf("EscapeJSString(%q) = %q, want %q", in, got, want)
		}
	}
}
