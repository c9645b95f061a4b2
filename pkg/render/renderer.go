package render

import (
	"context"

	"github.com/goliatone/go-sorttable/pkg/table"
)

// Renderer turns a table document into a byte representation (an HTML
// fragment, a full page).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc table.Document, options RenderOptions) ([]byte, error)
}
