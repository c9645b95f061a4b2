// Package page renders a table document as a complete HTML page: stylesheet
// links, the MooTools scripts, optional theme CSS variables and the table
// fragment produced by the fragment renderer.
package page
