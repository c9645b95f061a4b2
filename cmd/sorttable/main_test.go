package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sorttable/internal/prompt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender_FragmentToStdout(t *testing.T) {
	got, err := execute(t, "render", "--source", filepath.Join("testdata", "people.yaml"), "--renderer", "fragment", "--table-id", "people", "--sort-index=-1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"new HtmlTable($('people'), {",
		"sortIndex: null,",
		`<th class="table-th-nosort"></th>`,
		"<script>alert(1)</script>edit",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRender_ConfigAndSanitize(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.html")
	_, err := execute(t, "render",
		"--source", filepath.Join("testdata", "people.yaml"),
		"--config", filepath.Join("testdata", "render.toml"),
		"--sanitize",
		"--output", output,
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)
	for _, want := range []string{
		"<title>Crew</title>",
		`src="/js/mootools.js"`,
		"refreshTips();",
		"sortIndex: 1,",
		`id="crew"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "alert(1)") {
		t.Fatalf("sanitized output must not contain the script payload:\n%s", got)
	}
}

func TestRender_ColumnsAndLimit(t *testing.T) {
	got, err := execute(t, "render", "--source", filepath.Join("testdata", "people.yaml"), "--renderer", "fragment", "--columns", "Role,Name", "--limit", "1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "<tbody><tr><td>Engineer</td><td>Ada</td></tr></tbody>") {
		t.Fatalf("unexpected body:\n%s", got)
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := execute(t, "render"); err == nil {
		t.Fatal("expected error without --source")
	}
	if _, err := execute(t, "render", "--source", "testdata/people.yaml", "--format", "csv"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := execute(t, "render", "--source", "testdata/people.yaml", "--renderer", "pdf"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

type scriptedDriver struct {
	inputs []string
	index  int
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return d.index, nil
}

func TestPrepare_Interactive(t *testing.T) {
	opts := &options{
		source:      filepath.Join("testdata", "people.yaml"),
		renderer:    "fragment",
		interactive: true,
		driver:      &scriptedDriver{inputs: []string{"asked", "Asked title"}, index: 2},
	}
	p, err := opts.prepare(context.Background())
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	out, _, err := p.render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "$('asked')") || !strings.Contains(got, "sortIndex: 1,") {
		t.Fatalf("expected prompted settings in output:\n%s", got)
	}
}

func TestHandler(t *testing.T) {
	opts := &options{source: filepath.Join("testdata", "people.yaml"), renderer: "page"}
	p, err := opts.prepare(context.Background())
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	srv := httptest.NewServer(newHandler(p))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `href="/css/sort_table.css"`) {
		t.Fatalf("unexpected page response %d:\n%s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}

	css, err := http.Get(srv.URL + "/css/sort_table.css")
	if err != nil {
		t.Fatalf("get stylesheet: %v", err)
	}
	_ = css.Body.Close()
	if css.StatusCode != http.StatusOK {
		t.Fatalf("expected stylesheet to be served, got %d", css.StatusCode)
	}

	missing, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	_ = missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", missing.StatusCode)
	}
}
