package decoder

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-sorttable/pkg/table"
)

// OperationHeaders are the fixed columns of an OpenAPI operations table.
var OperationHeaders = []string{"Method", "Path", "Operation", "Summary"}

type operationRow struct {
	method  string
	path    string
	id      string
	summary string
}

// decodeOpenAPI lists every operation of the document, sorted by path then
// method.
func decodeOpenAPI(ctx context.Context, raw []byte, methods []string) (table.Document, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	document, err := loader.LoadFromData(raw)
	if err != nil {
		return table.Document{}, fmt.Errorf("load openapi document: %w", err)
	}
	if document.Paths == nil || document.Paths.Len() == 0 {
		return table.Document{}, errors.New("openapi document does not contain any paths")
	}

	allowed := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		if trimmed := strings.ToUpper(strings.TrimSpace(m)); trimmed != "" {
			allowed[trimmed] = struct{}{}
		}
	}

	var ops []operationRow
	for path, item := range document.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			if len(allowed) > 0 {
				if _, ok := allowed[method]; !ok {
					continue
				}
			}
			ops = append(ops, operationRow{method: method, path: path, id: op.OperationID, summary: op.Summary})
		}
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].path != ops[j].path {
			return ops[i].path < ops[j].path
		}
		return ops[i].method < ops[j].method
	})

	doc := table.Document{Headers: table.Headers(OperationHeaders...)}
	for _, op := range ops {
		doc.Rows = append(doc.Rows, table.Cells(
			table.Decorated{Value: op.method, Class: "method method-" + strings.ToLower(op.method)},
			table.Plain(html.EscapeString(op.path)),
			table.Plain(html.EscapeString(op.id)),
			table.Plain(html.EscapeString(op.summary)),
		))
	}
	return doc, nil
}
