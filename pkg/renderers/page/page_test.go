package page_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sorttable/pkg/render"
	"github.com/goliatone/go-sorttable/pkg/renderers/fragment"
	"github.com/goliatone/go-sorttable/pkg/renderers/page"
	"github.com/goliatone/go-sorttable/pkg/table"
	"github.com/goliatone/go-sorttable/pkg/testsupport"
)

func sampleDocument() table.Document {
	return table.Document{
		Headers: table.Headers("Date", "Amount"),
		Rows: []table.Row{
			table.Texts("2013-01-01", "10"),
			table.Texts("2013-01-02", "20"),
		},
	}
}

func TestPageRenderer_Document(t *testing.T) {
	r, err := page.New(page.WithFragmentOptions(fragment.WithTableConfig(table.Config{TableID: "ledger"})))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if r.Name() != page.Name {
		t.Fatalf("unexpected name %q", r.Name())
	}

	out, err := r.Render(testsupport.Context(), sampleDocument(), render.RenderOptions{Title: "Ledger <2013>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)

	if !strings.HasPrefix(got, "<!DOCTYPE html>\n") {
		t.Fatalf("expected doctype prefix, got:\n%s", got)
	}
	for _, want := range []string{
		`<html lang="en">`,
		"<title>Ledger &lt;2013&gt;</title>",
		`<link rel="stylesheet" href="/css/sort_table.css">`,
		`<script type="text/javascript" src="` + page.DefaultWidgetScripts[0] + `"></script>`,
		`<script type="text/javascript" src="` + page.DefaultWidgetScripts[1] + `"></script>`,
		"<h1>Ledger &lt;2013&gt;</h1>",
		"new HtmlTable($('ledger'), {",
		`<table class="sortTable" id="ledger">`,
		"</tbody></table>\n</body>\n</html>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<style>") {
		t.Fatalf("did not expect a style block without a theme:\n%s", got)
	}

	if idx := strings.Index(got, "mootools-core"); idx > strings.Index(got, "mootools-more") {
		t.Fatalf("core script must load before more:\n%s", got)
	}
}

func TestPageRenderer_ForwardsStylesheetToRegistrar(t *testing.T) {
	r, err := page.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	rec := &testsupport.RecordingRegistrar{}
	if _, err := r.Render(testsupport.Context(), sampleDocument(), render.RenderOptions{Registrar: rec}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"/css/sort_table.css"}, rec.Calls()); diff != "" {
		t.Fatalf("registrar calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPageRenderer_CustomScriptsAndStylesheets(t *testing.T) {
	r, err := page.New(
		page.WithWidgetScripts("/js/mootools.js"),
		page.WithStylesheets("/css/site.css"),
		page.WithLang("fr"),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(testsupport.Context(), sampleDocument(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)

	if strings.Contains(got, "cdnjs") {
		t.Fatalf("default scripts should be replaced:\n%s", got)
	}
	if testsupport.CountTags(got, "script") != 2 {
		t.Fatalf("expected widget script plus init script, got:\n%s", got)
	}
	site := strings.Index(got, `href="/css/site.css"`)
	tbl := strings.Index(got, `href="/css/sort_table.css"`)
	if site < 0 || tbl < 0 || site > tbl {
		t.Fatalf("expected site stylesheet before table stylesheet:\n%s", got)
	}
	if !strings.Contains(got, `<html lang="fr">`) {
		t.Fatalf("expected lang attribute:\n%s", got)
	}
}

func TestPageRenderer_NoWidgetScripts(t *testing.T) {
	r, err := page.New(page.WithWidgetScripts())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(testsupport.Context(), sampleDocument(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if n := testsupport.CountTags(string(out), "script"); n != 1 {
		t.Fatalf("expected only the init script, got %d:\n%s", n, out)
	}
}

func TestPageRenderer_Theme(t *testing.T) {
	r, err := page.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	cfg := &theme.RendererConfig{
		Theme:   "dark",
		CSSVars: map[string]string{"--sorttable-zebra": "#222", "--sorttable-focus": "#333"},
		AssetURL: func(key string) string {
			if key == "sorttable.stylesheet" {
				return "/themes/dark/table.css"
			}
			return ""
		},
	}
	out, err := r.Render(testsupport.Context(), sampleDocument(), render.RenderOptions{Theme: cfg})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		`<link rel="stylesheet" href="/themes/dark/table.css">`,
		"<style>\n:root {\n\t--sorttable-focus: #333;\n\t--sorttable-zebra: #222;\n}\n</style>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "/css/sort_table.css") {
		t.Fatalf("theme stylesheet should replace the default:\n%s", got)
	}
}

func TestPageRenderer_CanceledContext(t *testing.T) {
	r, err := page.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Render(ctx, sampleDocument(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
