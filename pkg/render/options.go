package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-sorttable/pkg/assets"
	"github.com/goliatone/go-sorttable/pkg/table"
)

// RenderOptions carry per-request data renderers use without rebuilding the
// table renderer.
type RenderOptions struct {
	// Init configures the widget bootstrap script.
	Init table.InitOptions
	// Title is used by renderers that emit a whole document.
	Title string
	// Theme supplies stylesheet overrides and CSS variables. Nil keeps the
	// renderer's own configuration.
	Theme *theme.RendererConfig
	// Registrar receives the stylesheet registered by the table. Renderers
	// fall back to a private registry when nil.
	Registrar assets.Registrar
}
