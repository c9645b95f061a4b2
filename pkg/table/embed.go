package table

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded bootstrap script template. Callers that
// supply their own engine through WithTemplateRenderer must provide a
// "templates/init" template with the same variables.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
