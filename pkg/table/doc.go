// Package table renders sortable HTML tables for the MooTools HtmlTable
// widget.
//
// A Renderer holds an immutable Config and produces four independent
// fragments: Init (stylesheet registration plus the widget bootstrap script),
// StartTable (table tag and header row), Rows and EndTable. Callers
// concatenate them in that order, or call Render with a Document.
//
//	r, _ := table.New(table.Config{TableID: "users"})
//	script, _ := r.Init(registry, table.InitOptions{SortIndex: table.Int(1)})
//	html := script +
//		r.StartTable(table.Plain("Name"), table.HeaderCell{Value: "", Sortable: table.Bool(false)}) +
//		r.Rows(table.Texts("Ada")) +
//		r.EndTable()
//
// Display values are markup and are written verbatim unless a Sanitizer is
// configured. Attribute values are escaped; Extra attribute strings are not.
package table
