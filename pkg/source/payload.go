package source

import "errors"

// Payload wraps raw document bytes and their origin.
type Payload struct {
	source Source
	raw    []byte
}

// NewPayload constructs a Payload, rejecting empty input.
func NewPayload(src Source, raw []byte) (Payload, error) {
	if src == nil {
		return Payload{}, errors.New("source: source is required")
	}
	if len(raw) == 0 {
		return Payload{}, errors.New("source: payload is empty")
	}
	clone := append([]byte(nil), raw...)
	return Payload{source: src, raw: clone}, nil
}

// MustNewPayload panics if the payload cannot be created. Useful for tests.
func MustNewPayload(src Source, raw []byte) Payload {
	p, err := NewPayload(src, raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Payload) Source() Source {
	return p.source
}

// Raw returns a copy of the payload bytes.
func (p Payload) Raw() []byte {
	return append([]byte(nil), p.raw...)
}

// Format reports the format of the originating source.
func (p Payload) Format() Format {
	if p.source == nil {
		return FormatUnknown
	}
	return p.source.Format()
}

// Location returns the string identifier for the origin.
func (p Payload) Location() string {
	if p.source == nil {
		return ""
	}
	return p.source.Location()
}
