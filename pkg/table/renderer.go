package table

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-sorttable/pkg/assets"
	rendertemplate "github.com/goliatone/go-sorttable/pkg/render/template"
	gotemplate "github.com/goliatone/go-sorttable/pkg/render/template/gotemplate"
)

const initTemplate = "templates/init"

// Option customises a Renderer.
type Option func(*Renderer)

// WithTemplateRenderer replaces the engine used for the bootstrap script.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(r *Renderer) {
		if renderer != nil {
			r.templates = renderer
		}
	}
}

// WithSanitizer filters every header and cell value through s.
func WithSanitizer(s Sanitizer) Option {
	return func(r *Renderer) {
		r.sanitizer = s
	}
}

// WithTheme lets a theme provide the stylesheet URL. When the theme has no
// stylesheet asset the configured path is kept.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// Renderer produces the markup fragments of one sortable table. Fragments are
// independent of each other; callers concatenate them in the order
// Init, StartTable, Rows, EndTable.
type Renderer struct {
	cfg       Config
	templates rendertemplate.TemplateRenderer
	sanitizer Sanitizer
	theme     *theme.RendererConfig
}

// New builds a Renderer for cfg, filling omitted fields with defaults.
func New(cfg Config, options ...Option) (*Renderer, error) {
	r := &Renderer{cfg: cfg.WithDefaults()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("table: configure template renderer: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// MustNew is New for init-time wiring; it panics on error.
func MustNew(cfg Config, options ...Option) *Renderer {
	r, err := New(cfg, options...)
	if err != nil {
		panic(err)
	}
	return r
}

// Themed returns a copy of r that resolves its stylesheet through cfg. The
// copy shares r's template engine and sanitizer.
func (r *Renderer) Themed(cfg *theme.RendererConfig) *Renderer {
	clone := *r
	clone.theme = cfg
	return &clone
}

// Config returns the effective configuration, defaults included.
func (r *Renderer) Config() Config {
	return r.cfg
}

// TableID returns the id the client widget binds to.
func (r *Renderer) TableID() string {
	return r.cfg.TableID
}

// StylesheetPath returns the stylesheet Init registers.
func (r *Renderer) StylesheetPath() string {
	if url := assets.ThemeStylesheet(r.theme); url != "" {
		return url
	}
	return r.cfg.StylesheetPath()
}

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
var callbackNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$.]*$`)

// Init registers the stylesheet with registrar and returns the script that
// instantiates the client widget once the document is ready. A nil registrar
// skips registration.
func (r *Renderer) Init(registrar assets.Registrar, opts InitOptions) (string, error) {
	if registrar != nil {
		registrar.AddStylesheet(r.StylesheetPath())
	}

	parsers := ""
	if len(opts.Parsers) > 0 {
		payload, err := json.Marshal(opts.Parsers)
		if err != nil {
			return "", fmt.Errorf("table: encode parsers: %w", err)
		}
		parsers = string(payload)
	}

	data := map[string]any{
		"function_name":  functionName(opts.FunctionName),
		"callback":       callbackCode(opts.Callback),
		"table_id":       r.cfg.TableID,
		"sortable":       jsBool(opts.sortable()),
		"sort_index":     opts.sortIndexLiteral(),
		"sort_reverse":   opts.SortReverse,
		"parsers":        parsers,
		"default_parser": strings.TrimSpace(opts.DefaultParser),
	}

	out, err := r.templates.RenderTemplate(initTemplate, data)
	if err != nil {
		return "", fmt.Errorf("table: render init script: %w", err)
	}
	return out, nil
}

// StartTable opens the table. With at least one header it also emits the
// header row; the body section is always opened.
func (r *Renderer) StartTable(headers ...HeaderContent) string {
	var b strings.Builder
	b.Grow(64 + len(headers)*48)

	b.WriteString(`<table class="` + ClassTable + `"`)
	writeAttr(&b, "id", r.cfg.TableID)
	b.WriteByte('>')

	if len(headers) > 0 {
		b.WriteString(`<thead><tr class="` + ClassHeader + `">`)
		for _, content := range headers {
			if content == nil {
				content = Plain("")
			}
			r.writeHeader(&b, content.header())
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	return b.String()
}

// Rows emits one <tr> per non-empty row.
func (r *Renderer) Rows(rows ...Row) string {
	var b strings.Builder
	for _, row := range rows {
		if row.Empty() {
			continue
		}
		b.WriteString("<tr")
		writeAttr(&b, "id", row.ID)
		writeAttr(&b, "class", row.Class)
		writeExtra(&b, row.Extra)
		b.WriteByte('>')
		for _, content := range row.Cells {
			if content == nil {
				content = Plain("")
			}
			r.writeCell(&b, content.cell())
		}
		b.WriteString("</tr>")
	}
	return b.String()
}

// EndTable closes the body and the table.
func (r *Renderer) EndTable() string {
	return "</tbody></table>"
}

// Render runs the whole sequence for doc and concatenates the fragments.
func (r *Renderer) Render(registrar assets.Registrar, opts InitOptions, doc Document) (string, error) {
	script, err := r.Init(registrar, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(script)
	b.WriteString(r.StartTable(doc.Headers...))
	b.WriteString(r.Rows(doc.Rows...))
	b.WriteString(r.EndTable())
	return b.String(), nil
}

// writeHeader judges sortability on the sanitized value, the one emitted.
func (r *Renderer) writeHeader(b *strings.Builder, h HeaderCell) {
	h.Value = r.value(h.Value)
	class := strings.TrimSpace(h.Class)
	if !h.IsSortable() {
		class = joinClasses(ClassNoSort, class)
	}

	b.WriteString("<th")
	writeAttr(b, "class", class)
	writeAttr(b, "width", h.Width)
	writeExtra(b, h.Extra)
	b.WriteByte('>')
	b.WriteString(h.Value)
	b.WriteString("</th>")
}

func (r *Renderer) writeCell(b *strings.Builder, c Decorated) {
	b.WriteString("<td")
	writeAttr(b, "class", c.Class)
	writeAttr(b, "width", c.Width)
	writeExtra(b, c.Extra)
	b.WriteByte('>')
	b.WriteString(r.value(c.Value))
	b.WriteString("</td>")
}

func (r *Renderer) value(v string) string {
	if r.sanitizer == nil || v == "" {
		return v
	}
	return r.sanitizer.Sanitize(v)
}

func functionName(name string) string {
	trimmed := strings.TrimSpace(name)
	if !identPattern.MatchString(trimmed) {
		return DefaultFunctionName
	}
	return trimmed
}

// callbackCode turns a bare function name into a call and keeps anything else
// as JavaScript source.
func callbackCode(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if callbackNamePattern.MatchString(trimmed) {
		return trimmed + "();"
	}
	return trimmed
}

func jsBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
