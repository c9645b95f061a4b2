// Package template defines the renderer-agnostic template engine interface
// used for the widget bootstrap script and the standalone page document.
// The pongo2-backed implementation lives in the gotemplate subpackage.
package template
