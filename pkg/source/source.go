package source

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Source identifies where a table document originated.
type Source interface {
	Kind() SourceKind
	Location() string
	Format() Format
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Format names a payload encoding understood by the decoder.
type Format string

const (
	FormatUnknown Format = ""
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatXLSX    Format = "xlsx"
	FormatOpenAPI Format = "openapi"
)

// ErrUnknownFormat is returned when a format cannot be inferred or is not
// supported.
var ErrUnknownFormat = errors.New("source: unknown format")

// ParseFormat normalises a user supplied format name. Empty input yields
// FormatUnknown without error.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return FormatUnknown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "openapi", "oas", "swagger":
		return FormatOpenAPI, nil
	default:
		return FormatUnknown, fmt.Errorf("%w %q", ErrUnknownFormat, raw)
	}
}

// FormatFromName infers a format from a file name or URL path extension.
func FormatFromName(name string) Format {
	if u, err := url.Parse(name); err == nil && u.Scheme != "" {
		name = u.Path
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatUnknown
	}
}

type baseSource struct {
	kind     SourceKind
	location string
	format   Format
}

func (s baseSource) Kind() SourceKind {
	return s.kind
}

func (s baseSource) Location() string {
	return s.location
}

func (s baseSource) Format() Format {
	return s.format
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(p string) Source {
	clean := filepath.Clean(p)
	return baseSource{kind: SourceKindFile, location: clean, format: FormatFromName(clean)}
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return baseSource{kind: SourceKindFS, location: name, format: FormatFromName(name)}
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("source: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("source: invalid URL %q: %v", raw, err))
	}
	return baseSource{kind: SourceKindURL, location: raw, format: FormatFromName(raw)}
}

// WithFormat returns a copy of src reporting format instead of the inferred
// one. FormatUnknown leaves src unchanged.
func WithFormat(src Source, format Format) Source {
	if src == nil || format == FormatUnknown {
		return src
	}
	return baseSource{kind: src.Kind(), location: src.Location(), format: format}
}

// Resolve picks a Source for a CLI style reference: http(s) URLs become URL
// sources, anything else a file.
func Resolve(ref string) (Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("source: reference is required")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		if _, err := url.ParseRequestURI(ref); err != nil {
			return nil, fmt.Errorf("source: invalid URL %q: %w", ref, err)
		}
		return SourceFromURL(ref), nil
	}
	return SourceFromFile(ref), nil
}
