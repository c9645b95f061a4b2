package sorttable

import (
	"io/fs"

	"github.com/goliatone/go-sorttable/pkg/assets"
	"github.com/goliatone/go-sorttable/pkg/renderers/page"
	"github.com/goliatone/go-sorttable/pkg/table"
)

// EmbeddedTemplates exposes the built-in bootstrap script template so callers
// can reuse or extend it without importing the table package directly.
func EmbeddedTemplates() fs.FS {
	return table.TemplatesFS()
}

// PageTemplates exposes the built-in page template.
func PageTemplates() fs.FS {
	return page.TemplatesFS()
}

// StylesheetFS exposes the bundled table stylesheet.
//
// Typical mount:
//
//	mux.Handle("/css/",
//	  http.StripPrefix("/css/",
//	    http.FileServerFS(sorttable.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return assets.FS()
}
