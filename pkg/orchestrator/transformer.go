package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-sorttable/pkg/table"
)

// Transformer mutates a decoded document before rendering.
type Transformer interface {
	Transform(ctx context.Context, doc *table.Document) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *table.Document) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, doc *table.Document) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, doc)
}

// LimitRows keeps at most n body rows. n <= 0 keeps everything.
func LimitRows(n int) Transformer {
	return TransformerFunc(func(_ context.Context, doc *table.Document) error {
		if n > 0 && len(doc.Rows) > n {
			doc.Rows = doc.Rows[:n]
		}
		return nil
	})
}

// SelectColumns keeps the named columns, in the given order. Header labels
// are matched case-insensitively after trimming; an unknown name is an
// error.
func SelectColumns(names ...string) Transformer {
	return TransformerFunc(func(_ context.Context, doc *table.Document) error {
		if len(names) == 0 {
			return nil
		}

		positions := make(map[string]int, len(doc.Headers))
		for i, h := range doc.Headers {
			label := strings.ToLower(strings.TrimSpace(headerValue(h)))
			if _, seen := positions[label]; !seen {
				positions[label] = i
			}
		}

		keep := make([]int, 0, len(names))
		for _, name := range names {
			idx, ok := positions[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return fmt.Errorf("select columns: column %q not found", name)
			}
			keep = append(keep, idx)
		}

		headers := make([]table.HeaderContent, len(keep))
		for i, idx := range keep {
			headers[i] = doc.Headers[idx]
		}
		doc.Headers = headers

		for r := range doc.Rows {
			cells := make([]table.Content, len(keep))
			for i, idx := range keep {
				if idx < len(doc.Rows[r].Cells) {
					cells[i] = doc.Rows[r].Cells[idx]
				} else {
					cells[i] = table.Plain("")
				}
			}
			if len(doc.Rows[r].Cells) > 0 {
				doc.Rows[r].Cells = cells
			}
		}
		return nil
	})
}

// ErrNoHeaders is returned by RequireHeaders for header-less documents.
var ErrNoHeaders = errors.New("document has no headers")

// RequireHeaders rejects documents without a header row.
func RequireHeaders() Transformer {
	return TransformerFunc(func(_ context.Context, doc *table.Document) error {
		if len(doc.Headers) == 0 {
			return ErrNoHeaders
		}
		return nil
	})
}

func headerValue(h table.HeaderContent) string {
	switch v := h.(type) {
	case table.Plain:
		return string(v)
	case table.Decorated:
		return v.Value
	case table.HeaderCell:
		return v.Value
	default:
		return ""
	}
}
