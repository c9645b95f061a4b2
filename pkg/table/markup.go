package table

import (
	"html"
	"strings"
)

// writeAttr writes ` name="value"` with the value escaped. Empty values are
// omitted.
func writeAttr(b *strings.Builder, name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

// writeExtra appends a caller supplied attribute string verbatim.
func writeExtra(b *strings.Builder, extra string) {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(extra)
}

func joinClasses(classes ...string) string {
	keep := make([]string, 0, len(classes))
	for _, class := range classes {
		if class = strings.TrimSpace(class); class != "" {
			keep = append(keep, class)
		}
	}
	return strings.Join(keep, " ")
}
