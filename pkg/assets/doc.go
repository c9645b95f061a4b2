// Package assets tracks the stylesheets and scripts a rendered page needs,
// bundles the default table stylesheet, and resolves theme provided
// overrides through go-theme.
package assets
