package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-sorttable/internal/source/loader"
	"github.com/goliatone/go-sorttable/pkg/source"
)

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	if err := os.WriteFile(path, []byte("headers: [A]\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(source.NewLoaderOptions())
	payload, err := l.Load(context.Background(), source.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(payload.Raw()) != "headers: [A]\n" {
		t.Fatalf("unexpected payload %q", payload.Raw())
	}
	if payload.Format() != source.FormatYAML {
		t.Fatalf("expected yaml format, got %q", payload.Format())
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"tables/people.json": {Data: []byte(`{"headers":["Name"]}`)},
	}
	l := loader.New(source.NewLoaderOptions(source.WithFileSystem(files)))

	payload, err := l.Load(context.Background(), source.SourceFromFS("tables/people.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if payload.Format() != source.FormatJSON {
		t.Fatalf("expected json format, got %q", payload.Format())
	}

	if _, err := l.Load(context.Background(), source.SourceFromFS("missing.json")); err == nil {
		t.Fatal("expected error for missing fs entry")
	}
}

func TestLoader_FSNotConfigured(t *testing.T) {
	l := loader.New(source.NewLoaderOptions())
	_, err := l.Load(context.Background(), source.SourceFromFS("x.yaml"))
	if err == nil || !strings.Contains(err.Error(), "filesystem is not configured") {
		t.Fatalf("expected filesystem error, got %v", err)
	}
}

func TestLoader_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("rows: []\n"))
	}))
	defer srv.Close()

	disabled := loader.New(source.NewLoaderOptions())
	if _, err := disabled.Load(context.Background(), source.SourceFromURL(srv.URL+"/t.yaml")); err == nil {
		t.Fatal("expected http to be disabled by default")
	}

	l := loader.New(source.NewLoaderOptions(source.WithHTTPFallback(5 * time.Second)))
	payload, err := l.Load(context.Background(), source.SourceFromURL(srv.URL+"/t.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(payload.Raw()) != "rows: []\n" {
		t.Fatalf("unexpected payload %q", payload.Raw())
	}

	if _, err := l.Load(context.Background(), source.SourceFromURL(srv.URL+"/missing.yaml")); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestLoader_HTTPClientOption(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("headers: [A]\n"))
	}))
	defer srv.Close()

	l := loader.New(source.NewLoaderOptions(source.WithHTTPClient(srv.Client())))
	if _, err := l.Load(context.Background(), source.SourceFromURL(srv.URL+"/t.yaml")); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := loader.New(source.NewLoaderOptions())
	_, err := l.Load(ctx, source.SourceFromFile("whatever.yaml"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoader_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	l := loader.New(source.NewLoaderOptions())
	if _, err := l.Load(context.Background(), source.SourceFromFile(path)); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
