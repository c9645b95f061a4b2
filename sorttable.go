// Package sorttable renders data tables as HTML wired to the MooTools
// HtmlTable sort widget. The root package re-exports the common entry points;
// the building blocks live under pkg/.
package sorttable

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-sorttable/pkg/orchestrator"
	"github.com/goliatone/go-sorttable/pkg/render"
	"github.com/goliatone/go-sorttable/pkg/source"
	"github.com/goliatone/go-sorttable/pkg/table"
)

// RenderOptions describes per-request overrides passed to renderers.
type RenderOptions = render.RenderOptions

// Document is a whole table: headers plus body rows.
type Document = table.Document

// Request describes one pipeline run.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderHTML loads src, decodes it and renders it with the named renderer
// ("page" when empty).
func RenderHTML(ctx context.Context, src source.Source, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:        src,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// RenderDocument renders an in-memory document, bypassing the loader and
// decoder.
func RenderDocument(ctx context.Context, doc Document, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:      &doc,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
