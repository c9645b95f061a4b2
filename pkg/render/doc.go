// Package render defines the contract shared by the table output renderers
// and a name-keyed registry to select one at runtime.
package render
