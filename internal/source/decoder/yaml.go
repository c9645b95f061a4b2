package decoder

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sorttable/pkg/table"
)

// yamlDocument decodes headers and cells through pointers: yaml.v3 drops null
// sequence entries bound to struct elements but keeps them as nil pointers.
type yamlDocument struct {
	Headers []*yamlHeader `yaml:"headers"`
	Rows    []yamlRow     `yaml:"rows"`
}

type yamlHeader struct {
	content table.HeaderContent
}

func (h *yamlHeader) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		h.content = table.Plain(scalarValue(node))
		return nil
	case yaml.MappingNode:
		var cell table.HeaderCell
		if err := node.Decode(&cell); err != nil {
			return err
		}
		h.content = cell
		return nil
	default:
		return fmt.Errorf("line %d: header must be a scalar or a mapping", node.Line)
	}
}

type yamlCell struct {
	content table.Content
}

func (c *yamlCell) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		c.content = table.Plain(scalarValue(node))
		return nil
	case yaml.MappingNode:
		var cell table.Decorated
		if err := node.Decode(&cell); err != nil {
			return err
		}
		c.content = cell
		return nil
	default:
		return fmt.Errorf("line %d: cell must be a scalar or a mapping", node.Line)
	}
}

type yamlRow struct {
	row table.Row
}

func (r *yamlRow) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var cells []*yamlCell
		if err := node.Decode(&cells); err != nil {
			return err
		}
		r.row = table.Row{Cells: contents(cells)}
		return nil
	case yaml.MappingNode:
		var raw struct {
			ID    string      `yaml:"id"`
			Class string      `yaml:"class"`
			Extra string      `yaml:"other"`
			Cells []*yamlCell `yaml:"cells"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		r.row = table.Row{ID: raw.ID, Class: raw.Class, Extra: raw.Extra, Cells: contents(raw.Cells)}
		return nil
	default:
		return fmt.Errorf("line %d: row must be a list of cells or a mapping", node.Line)
	}
}

func decodeYAML(raw []byte) (table.Document, error) {
	var parsed yamlDocument
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return table.Document{}, fmt.Errorf("parse table: %w", err)
	}

	doc := table.Document{
		Headers: make([]table.HeaderContent, 0, len(parsed.Headers)),
		Rows:    make([]table.Row, 0, len(parsed.Rows)),
	}
	for _, h := range parsed.Headers {
		if h == nil || h.content == nil {
			doc.Headers = append(doc.Headers, table.Plain(""))
			continue
		}
		doc.Headers = append(doc.Headers, h.content)
	}
	for _, r := range parsed.Rows {
		doc.Rows = append(doc.Rows, r.row)
	}
	return doc, nil
}

func looksLikeOpenAPI(raw []byte) (bool, error) {
	var probe map[string]any
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return false, fmt.Errorf("parse document: %w", err)
	}
	_, openapi := probe["openapi"]
	_, swagger := probe["swagger"]
	return openapi || swagger, nil
}

func scalarValue(node *yaml.Node) string {
	if node.ShortTag() == "!!null" {
		return ""
	}
	return node.Value
}

// contents maps decoded cells to table content. Null entries decode to nil
// pointers and become empty cells so later columns keep their position.
func contents(cells []*yamlCell) []table.Content {
	out := make([]table.Content, len(cells))
	for i, cell := range cells {
		if cell == nil || cell.content == nil {
			out[i] = table.Plain("")
			continue
		}
		out[i] = cell.content
	}
	return out
}
