package table

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans display values before they are written into a cell.
type Sanitizer interface {
	Sanitize(string) string
}

// SanitizerFunc adapts a function to Sanitizer.
type SanitizerFunc func(string) string

// Sanitize calls f(s).
func (f SanitizerFunc) Sanitize(s string) string {
	return f(s)
}

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

// BluemondaySanitizer returns a sanitizer backed by bluemonday's UGC policy
// with class attributes allowed, so links, emphasis and icons survive while
// scripts and event handlers are dropped.
func BluemondaySanitizer() Sanitizer {
	return SanitizerFunc(sanitizeCellMarkup)
}

// EscapeSanitizer treats every value as text and strips all markup.
func EscapeSanitizer() Sanitizer {
	policy := bluemonday.StrictPolicy()
	return SanitizerFunc(func(s string) string {
		return policy.Sanitize(s)
	})
}

func sanitizeCellMarkup(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	return cellSanitizer().Sanitize(raw)
}

func cellSanitizer() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("title").Globally()
		policy.AllowDataAttributes()
		cellPolicy = policy
	})
	return cellPolicy
}
