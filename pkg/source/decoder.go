package source

import (
	"context"

	"github.com/goliatone/go-sorttable/pkg/table"
)

// Decoder turns a payload into a table document.
type Decoder interface {
	Decode(ctx context.Context, payload Payload) (table.Document, error)
}

// DecoderOptions tune format specific decoding.
type DecoderOptions struct {
	// Sheet selects the spreadsheet sheet; empty means the first one.
	Sheet string
	// Methods limits OpenAPI rows to the listed HTTP methods (upper case).
	// Empty means every method.
	Methods []string
}

// DecoderOption mutates DecoderOptions prior to construction.
type DecoderOption func(*DecoderOptions)

// WithSheet selects the spreadsheet sheet to read.
func WithSheet(name string) DecoderOption {
	return func(opts *DecoderOptions) {
		opts.Sheet = name
	}
}

// WithMethods filters OpenAPI operations by HTTP method.
func WithMethods(methods ...string) DecoderOption {
	return func(opts *DecoderOptions) {
		opts.Methods = append(opts.Methods, methods...)
	}
}

// NewDecoderOptions applies options and returns the resulting configuration.
func NewDecoderOptions(options ...DecoderOption) DecoderOptions {
	cfg := DecoderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
