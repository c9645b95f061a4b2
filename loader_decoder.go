package sorttable

import (
	"github.com/goliatone/go-sorttable/internal/source/decoder"
	"github.com/goliatone/go-sorttable/internal/source/loader"
	"github.com/goliatone/go-sorttable/pkg/source"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	return loader.New(source.NewLoaderOptions(options...))
}

// NewDecoder constructs a decoder backed by the internal implementation.
func NewDecoder(options ...source.DecoderOption) source.Decoder {
	return decoder.New(source.NewDecoderOptions(options...))
}
