package assets

import (
	"embed"
	"io/fs"
)

//go:embed static/*.css
var embeddedStatic embed.FS

// StylesheetName is the file name of the bundled stylesheet inside FS.
const StylesheetName = "sort_table.css"

// FS exposes the bundled stylesheet so callers can serve it or copy it into
// their own asset pipeline.
//
// Typical mount:
//
//	mux.Handle("/css/", http.StripPrefix("/css/", http.FileServerFS(assets.FS())))
func FS() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		return embeddedStatic
	}
	return sub
}

// Stylesheet returns the bundled stylesheet contents.
func Stylesheet() string {
	data, err := fs.ReadFile(embeddedStatic, "static/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
