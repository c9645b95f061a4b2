package decoder

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-sorttable/pkg/table"
)

// decodeXLSX reads one sheet. The first non-blank row holds the headers;
// blank rows are dropped and short rows are padded to the header width.
// Cell text is escaped since spreadsheets hold text, not markup.
func decodeXLSX(raw []byte, sheet string) (table.Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return table.Document{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.Document{}, errors.New("workbook has no sheets")
	}
	name := strings.TrimSpace(sheet)
	if name == "" {
		name = sheets[0]
	} else if !contains(sheets, name) {
		return table.Document{}, fmt.Errorf("sheet %q not found (available: %s)", name, strings.Join(sheets, ", "))
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return table.Document{}, fmt.Errorf("read sheet %q: %w", name, err)
	}

	var doc table.Document
	width := 0
	for _, cols := range rows {
		if blank(cols) {
			continue
		}
		for i := range cols {
			cols[i] = html.EscapeString(cols[i])
		}
		if doc.Headers == nil {
			doc.Headers = table.Headers(cols...)
			width = len(cols)
			continue
		}
		for len(cols) < width {
			cols = append(cols, "")
		}
		doc.Rows = append(doc.Rows, table.Texts(cols...))
	}
	return doc, nil
}

func blank(cols []string) bool {
	for _, col := range cols {
		if strings.TrimSpace(col) != "" {
			return false
		}
	}
	return true
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
