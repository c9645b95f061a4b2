// Package fragment renders a table document as an embeddable HTML fragment:
// the widget bootstrap script followed by the table markup.
package fragment

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-sorttable/pkg/assets"
	"github.com/goliatone/go-sorttable/pkg/render"
	"github.com/goliatone/go-sorttable/pkg/table"
)

// Name is the registry key of the fragment renderer.
const Name = "fragment"

// Option configures the fragment renderer.
type Option func(*config)

type config struct {
	table        table.Config
	tableOptions []table.Option
	renderer     *table.Renderer
}

// WithTableConfig sets the table configuration.
func WithTableConfig(cfg table.Config) Option {
	return func(c *config) {
		c.table = cfg
	}
}

// WithTableOptions forwards options to table.New.
func WithTableOptions(options ...table.Option) Option {
	return func(c *config) {
		c.tableOptions = append(c.tableOptions, options...)
	}
}

// WithTableRenderer uses an existing table renderer; WithTableConfig and
// WithTableOptions are then ignored.
func WithTableRenderer(r *table.Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// Renderer implements render.Renderer for HTML fragments.
type Renderer struct {
	table *table.Renderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the fragment renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	tr := cfg.renderer
	if tr == nil {
		var err error
		tr, err = table.New(cfg.table, cfg.tableOptions...)
		if err != nil {
			return nil, fmt.Errorf("fragment renderer: %w", err)
		}
	}
	return &Renderer{table: tr}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Table returns the underlying table renderer.
func (r *Renderer) Table() *table.Renderer {
	return r.table
}

func (r *Renderer) Render(ctx context.Context, doc table.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.table == nil {
		return nil, errors.New("fragment renderer: table renderer is nil")
	}

	tr := r.table
	if options.Theme != nil {
		tr = tr.Themed(options.Theme)
	}

	registrar := options.Registrar
	if registrar == nil {
		registrar = assets.NewRegistry()
	}

	out, err := tr.Render(registrar, options.Init, doc)
	if err != nil {
		return nil, fmt.Errorf("fragment renderer: %w", err)
	}
	return []byte(out), nil
}
