package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-sorttable/internal/source/decoder"
	"github.com/goliatone/go-sorttable/internal/source/loader"
	"github.com/goliatone/go-sorttable/pkg/assets"
	"github.com/goliatone/go-sorttable/pkg/render"
	"github.com/goliatone/go-sorttable/pkg/renderers/fragment"
	"github.com/goliatone/go-sorttable/pkg/renderers/page"
	"github.com/goliatone/go-sorttable/pkg/source"
	"github.com/goliatone/go-sorttable/pkg/table"
)

const defaultRendererName = page.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source loader.
func WithLoader(l source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithDecoder injects a custom payload decoder.
func WithDecoder(d source.Decoder) Option {
	return func(o *Orchestrator) {
		o.decoder = d
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformers registers transformers run in order on the decoded
// document before rendering.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// WithThemeSelector resolves Request.ThemeName/ThemeVariant into renderer
// theme configuration.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// Orchestrator coordinates the pipeline from a table source to rendered
// output. Missing stages default to the built-in implementations.
type Orchestrator struct {
	loader          source.Loader
	decoder         source.Decoder
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer
	themeSelector   theme.ThemeSelector
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Source identifies where the table lives. Optional when Payload or
	// Document is supplied.
	Source source.Source

	// Payload bypasses the loader.
	Payload *source.Payload

	// Document bypasses both loader and decoder.
	Document *table.Document

	// Renderer names the renderer; empty uses the default.
	Renderer string

	// ThemeName and ThemeVariant are resolved through the theme selector when
	// one is configured and RenderOptions.Theme is nil.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Generate runs the pipeline and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	doc, err := o.Document(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		if options.Theme, err = o.resolveTheme(req); err != nil {
			return nil, err
		}
	}

	output, err := renderer.Render(ctx, doc, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Document runs the load, decode and transform stages only.
func (o *Orchestrator) Document(ctx context.Context, req Request) (table.Document, error) {
	var doc table.Document
	switch {
	case req.Document != nil:
		doc = cloneDocument(*req.Document)
	default:
		payload, err := o.resolvePayload(ctx, req)
		if err != nil {
			return table.Document{}, err
		}
		doc, err = o.decoder.Decode(ctx, payload)
		if err != nil {
			return table.Document{}, fmt.Errorf("orchestrator: decode document: %w", err)
		}
	}

	for _, t := range o.transformers {
		if t == nil {
			continue
		}
		if err := t.Transform(ctx, &doc); err != nil {
			return table.Document{}, fmt.Errorf("orchestrator: transform document: %w", err)
		}
	}
	return doc, nil
}

// cloneDocument copies the header and row slices so transformers never write
// into a caller owned document.
func cloneDocument(in table.Document) table.Document {
	out := table.Document{
		Headers: append([]table.HeaderContent(nil), in.Headers...),
		Rows:    make([]table.Row, len(in.Rows)),
	}
	for i, row := range in.Rows {
		row.Cells = append([]table.Content(nil), row.Cells...)
		out.Rows[i] = row
	}
	return out
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolvePayload(ctx context.Context, req Request) (source.Payload, error) {
	if req.Payload != nil {
		return *req.Payload, nil
	}
	if req.Source == nil {
		return source.Payload{}, errors.New("orchestrator: source, payload or document is required")
	}
	payload, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return source.Payload{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return payload, nil
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil || (req.ThemeName == "" && req.ThemeVariant == "") {
		return nil, nil
	}
	cfg, err := assets.SelectTheme(o.themeSelector, req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return cfg, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = loader.New(source.NewLoaderOptions())
	}
	if o.decoder == nil {
		o.decoder = decoder.New(source.NewDecoderOptions())
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

// DefaultRegistry registers the fragment and page renderers with default
// table configuration plus any table options.
func DefaultRegistry(tableOptions ...table.Option) (*render.Registry, error) {
	return NewRegistry(table.Config{}, tableOptions, nil)
}

// NewRegistry builds a registry holding a fragment and a page renderer that
// share one table renderer.
func NewRegistry(cfg table.Config, tableOptions []table.Option, pageOptions []page.Option) (*render.Registry, error) {
	tr, err := table.New(cfg, tableOptions...)
	if err != nil {
		return nil, err
	}
	frag, err := fragment.New(fragment.WithTableRenderer(tr))
	if err != nil {
		return nil, err
	}
	pg, err := page.New(append([]page.Option{page.WithFragment(frag)}, pageOptions...)...)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	if err := registry.Register(frag); err != nil {
		return nil, err
	}
	if err := registry.Register(pg); err != nil {
		return nil, err
	}
	return registry, nil
}
