package table

import (
	"strconv"
	"strings"
)

// Default configuration values applied by New when a Config field is empty.
const (
	DefaultTableID        = "theTable"
	DefaultStylesheetDir  = "/css"
	DefaultStylesheetName = "sort_table.css"
	DefaultFunctionName   = "sortTable"
)

// Markup class names recognised by the stylesheet and the client widget.
const (
	ClassTable  = "sortTable"
	ClassHeader = "SortTableHeader"
	ClassNoSort = "table-th-nosort"
)

// Config is the per-table configuration. It is copied into the Renderer at
// construction and never changes afterwards.
type Config struct {
	// TableID is the id attribute of the table and the element the client
	// widget binds to. Defaults to DefaultTableID.
	TableID string `json:"tableId" yaml:"tableId" toml:"tableId"`
	// StylesheetDir is the directory (or URL prefix) of the stylesheet.
	// Defaults to DefaultStylesheetDir.
	StylesheetDir string `json:"stylesheetDir" yaml:"stylesheetDir" toml:"stylesheetDir"`
	// StylesheetName is the stylesheet file name. Defaults to
	// DefaultStylesheetName.
	StylesheetName string `json:"stylesheetName" yaml:"stylesheetName" toml:"stylesheetName"`
}

// WithDefaults returns a copy of c with every empty field set to its default.
func (c Config) WithDefaults() Config {
	out := c
	out.TableID = strings.TrimSpace(out.TableID)
	if out.TableID == "" {
		out.TableID = DefaultTableID
	}
	if strings.TrimSpace(out.StylesheetDir) == "" {
		out.StylesheetDir = DefaultStylesheetDir
	}
	if strings.TrimSpace(out.StylesheetName) == "" {
		out.StylesheetName = DefaultStylesheetName
	}
	return out
}

// StylesheetPath joins the stylesheet directory and file name.
func (c Config) StylesheetPath() string {
	dir := strings.TrimRight(strings.TrimSpace(c.StylesheetDir), "/")
	name := strings.TrimLeft(strings.TrimSpace(c.StylesheetName), "/")
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// InitOptions configure the widget bootstrap script produced by Init. The zero
// value yields a sortable table sorted on the first column.
type InitOptions struct {
	// Callback is JavaScript run inside the bootstrap function before the
	// widget is created. A bare function name is turned into a call.
	Callback string
	// FunctionName names the global bootstrap function so paginated or
	// ajax-loaded tables can call it again. Defaults to DefaultFunctionName.
	FunctionName string
	// Sortable enables sorting; nil means true.
	Sortable *bool
	// SortIndex is the column sorted on load; nil means 0.
	SortIndex *int
	// NoInitialSort leaves the table unsorted on load (sortIndex: null).
	NoInitialSort bool
	// SortReverse sorts the initial column in reverse order.
	SortReverse bool
	// Parsers maps column positions to widget parser names.
	Parsers []string
	// DefaultParser is used for columns without a detectable parser.
	DefaultParser string
}

// Bool returns a pointer to v, for optional flags.
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v, for optional indexes.
func Int(v int) *int {
	return &v
}

func (o InitOptions) sortable() bool {
	if o.Sortable == nil {
		return true
	}
	return *o.Sortable
}

// sortIndexLiteral is the JavaScript literal for the initial sort column.
func (o InitOptions) sortIndexLiteral() string {
	if o.NoInitialSort {
		return "null"
	}
	if o.SortIndex == nil {
		return "0"
	}
	if *o.SortIndex < 0 {
		return "null"
	}
	return strconv.Itoa(*o.SortIndex)
}

// Content is the display content of a body cell: Plain or Decorated.
type Content interface {
	cell() Decorated
}

// HeaderContent is the content of a header cell: Plain, Decorated or
// HeaderCell.
type HeaderContent interface {
	header() HeaderCell
}

// Plain is undecorated cell content. The text is emitted as markup.
type Plain string

func (p Plain) cell() Decorated {
	return Decorated{Value: string(p)}
}

func (p Plain) header() HeaderCell {
	return HeaderCell{Value: string(p)}
}

// Decorated is cell content carrying presentation attributes.
type Decorated struct {
	Value string `json:"value" yaml:"value"`
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
	Width string `json:"width,omitempty" yaml:"width,omitempty"`
	// Extra is appended verbatim inside the opening tag.
	Extra string `json:"other,omitempty" yaml:"other,omitempty"`
}

func (d Decorated) cell() Decorated {
	return d
}

func (d Decorated) header() HeaderCell {
	return HeaderCell{Value: d.Value, Class: d.Class, Width: d.Width, Extra: d.Extra}
}

// HeaderCell describes a column header.
type HeaderCell struct {
	Value string `json:"value" yaml:"value"`
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
	Width string `json:"width,omitempty" yaml:"width,omitempty"`
	Extra string `json:"other,omitempty" yaml:"other,omitempty"`
	// Sortable set to false disables sorting on the column. nil means the
	// column is sortable unless its value is empty.
	Sortable *bool `json:"sort,omitempty" yaml:"sort,omitempty"`
}

func (h HeaderCell) header() HeaderCell {
	return h
}

// IsSortable reports whether the column can be sorted. A header with an empty
// value is never sortable, whatever its flag says.
func (h HeaderCell) IsSortable() bool {
	if h.Sortable != nil && !*h.Sortable {
		return false
	}
	return strings.TrimSpace(h.Value) != ""
}

// Row is one body row.
type Row struct {
	ID    string    `json:"id,omitempty" yaml:"id,omitempty"`
	Class string    `json:"class,omitempty" yaml:"class,omitempty"`
	Extra string    `json:"other,omitempty" yaml:"other,omitempty"`
	Cells []Content `json:"-" yaml:"-"`
}

// Cells builds an attribute-less row.
func Cells(values ...Content) Row {
	return Row{Cells: values}
}

// Texts builds an attribute-less row of Plain cells.
func Texts(values ...string) Row {
	cells := make([]Content, len(values))
	for i, value := range values {
		cells[i] = Plain(value)
	}
	return Row{Cells: cells}
}

// Empty reports whether the row has no cells and is skipped on output.
func (r Row) Empty() bool {
	return len(r.Cells) == 0
}

// Document is a whole table: headers plus body rows.
type Document struct {
	Headers []HeaderContent
	Rows    []Row
}

// Headers builds a header list of Plain values.
func Headers(values ...string) []HeaderContent {
	out := make([]HeaderContent, len(values))
	for i, value := range values {
		out[i] = Plain(value)
	}
	return out
}
