package decoder

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-sorttable/pkg/source"
	"github.com/goliatone/go-sorttable/pkg/table"
)

// Decoder implements source.Decoder, dispatching on the payload format.
type Decoder struct {
	options source.DecoderOptions
}

var _ source.Decoder = (*Decoder)(nil)

// New constructs a Decoder with the given options.
func New(options source.DecoderOptions) source.Decoder {
	return &Decoder{options: options}
}

// Decode converts payload into a table document.
func (d *Decoder) Decode(ctx context.Context, payload source.Payload) (table.Document, error) {
	if err := ctx.Err(); err != nil {
		return table.Document{}, err
	}
	raw := payload.Raw()
	if len(raw) == 0 {
		return table.Document{}, errors.New("source decoder: payload is empty")
	}

	var (
		doc table.Document
		err error
	)
	switch format := payload.Format(); format {
	case source.FormatYAML, source.FormatJSON:
		doc, err = d.decodeStructured(ctx, raw)
	case source.FormatXLSX:
		doc, err = decodeXLSX(raw, d.options.Sheet)
	case source.FormatOpenAPI:
		doc, err = decodeOpenAPI(ctx, raw, d.options.Methods)
	default:
		err = fmt.Errorf("%w %q", source.ErrUnknownFormat, format)
	}
	if err != nil {
		return table.Document{}, fmt.Errorf("source decoder: %s: %w", payload.Location(), err)
	}
	return doc, nil
}

// decodeStructured handles YAML and JSON. Documents declaring an "openapi" or
// "swagger" version are routed to the OpenAPI decoder.
func (d *Decoder) decodeStructured(ctx context.Context, raw []byte) (table.Document, error) {
	isOpenAPI, err := looksLikeOpenAPI(raw)
	if err != nil {
		return table.Document{}, err
	}
	if isOpenAPI {
		return decodeOpenAPI(ctx, raw, d.options.Methods)
	}
	return decodeYAML(raw)
}
