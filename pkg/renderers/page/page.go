package page

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-sorttable/pkg/assets"
	"github.com/goliatone/go-sorttable/pkg/render"
	rendertemplate "github.com/goliatone/go-sorttable/pkg/render/template"
	gotemplate "github.com/goliatone/go-sorttable/pkg/render/template/gotemplate"
	"github.com/goliatone/go-sorttable/pkg/renderers/fragment"
	"github.com/goliatone/go-sorttable/pkg/table"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Name is the registry key of the page renderer.
const Name = "page"

// DefaultWidgetScripts load MooTools core and the "more" build that ships
// HtmlTable.Sort.
var DefaultWidgetScripts = []string{
	"https://cdnjs.cloudflare.com/ajax/libs/mootools/1.6.0/mootools-core.min.js",
	"https://cdnjs.cloudflare.com/ajax/libs/mootools-more/1.6.0/mootools-more-compressed.js",
}

const defaultTitle = "Table"

// TemplatesFS exposes the embedded page template.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Option configures the page renderer.
type Option func(*config)

type config struct {
	fragment      *fragment.Renderer
	fragmentOpts  []fragment.Option
	templates     rendertemplate.TemplateRenderer
	templateFS    fs.FS
	widgetScripts []string
	lang          string
	stylesheets   []string
}

// WithFragment reuses an existing fragment renderer for the table body.
func WithFragment(r *fragment.Renderer) Option {
	return func(c *config) {
		c.fragment = r
	}
}

// WithFragmentOptions configures the fragment renderer built by New.
func WithFragmentOptions(options ...fragment.Option) Option {
	return func(c *config) {
		c.fragmentOpts = append(c.fragmentOpts, options...)
	}
}

// WithTemplatesFS supplies an alternate page template bundle. It must hold
// templates/page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(c *config) {
		c.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(r rendertemplate.TemplateRenderer) Option {
	return func(c *config) {
		if r != nil {
			c.templates = r
		}
	}
}

// WithWidgetScripts replaces the script URLs that load the client widget.
// Passing no URLs omits the script tags, for pages that bundle MooTools
// themselves.
func WithWidgetScripts(urls ...string) Option {
	return func(c *config) {
		c.widgetScripts = append([]string{}, urls...)
	}
}

// WithStylesheets adds page stylesheets linked before the table stylesheet.
func WithStylesheets(urls ...string) Option {
	return func(c *config) {
		c.stylesheets = append(c.stylesheets, urls...)
	}
}

// WithLang sets the html lang attribute.
func WithLang(lang string) Option {
	return func(c *config) {
		if trimmed := strings.TrimSpace(lang); trimmed != "" {
			c.lang = trimmed
		}
	}
}

// Renderer wraps the table fragment into a standalone HTML document.
type Renderer struct {
	fragment      *fragment.Renderer
	templates     rendertemplate.TemplateRenderer
	widgetScripts []string
	stylesheets   []string
	lang          string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the page renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		widgetScripts: DefaultWidgetScripts,
		lang:          "en",
		templateFS:    TemplatesFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	frag := cfg.fragment
	if frag == nil {
		var err error
		frag, err = fragment.New(cfg.fragmentOpts...)
		if err != nil {
			return nil, fmt.Errorf("page renderer: %w", err)
		}
	}

	engine := cfg.templates
	if engine == nil {
		if cfg.templateFS == nil {
			cfg.templateFS = TemplatesFS()
		}
		built, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithSetName("sorttable-page"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		engine = built
	}

	return &Renderer{
		fragment:      frag,
		templates:     engine,
		widgetScripts: cfg.widgetScripts,
		stylesheets:   cfg.stylesheets,
		lang:          cfg.lang,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the document. Stylesheets registered while rendering the
// fragment become link tags and are also forwarded to options.Registrar.
func (r *Renderer) Render(ctx context.Context, doc table.Document, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil || r.fragment == nil {
		return nil, errors.New("page renderer: not configured")
	}

	page := assets.NewRegistry()
	for _, href := range r.stylesheets {
		page.AddStylesheet(href)
	}
	for _, src := range r.widgetScripts {
		page.AddScript(src)
	}

	fragmentOpts := options
	fragmentOpts.Registrar = assets.Tee(page, options.Registrar)

	body, err := r.fragment.Render(ctx, doc, fragmentOpts)
	if err != nil {
		return nil, fmt.Errorf("page renderer: %w", err)
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = defaultTitle
	}

	result, err := r.templates.RenderTemplate("templates/page", map[string]any{
		"lang":        r.lang,
		"title":       title,
		"stylesheets": toAny(page.Stylesheets()),
		"scripts":     toAny(page.Scripts()),
		"css_vars":    assets.CSSVarsBlock(options.Theme),
		"body":        string(body),
	})
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}
