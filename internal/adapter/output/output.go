// Package output provides formatters for cached overlay parameters.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/reticle/internal/cache"
)

// Formatter formats cache entries for output.
type Formatter interface {
	// Format writes formatted entries to the writer.
	Format(w io.Writer, entries []cache.Entry) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatTable  FormatType = "table"
	FormatPlain  FormatType = "plain"
	FormatJSON   FormatType = "json"
	FormatYAML   FormatType = "yaml"
	FormatHashes FormatType = "hashes"
)

// FormatTypes lists the accepted format names.
var FormatTypes = []FormatType{FormatTable, FormatPlain, FormatJSON, FormatYAML, FormatHashes}

// ParseFormat validates a format name.
func ParseFormat(name string) (FormatType, error) {
	for _, f := range FormatTypes {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	names := make([]string, len(FormatTypes))
	for i, f := range FormatTypes {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(names, ", "))
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatYAML:
		return NewYAMLFormatter()
	case FormatPlain:
		return NewPlainFormatter(opts)
	case FormatHashes:
		return NewHashesFormatter()
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	HashLen int              // Characters of the hash to show (0 = full)
	Now     func() time.Time // Reference time for relative timestamps
}

// DefaultFormatterOptions returns sensible defaults for terminal output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		HashLen: 12,
		Now:     time.Now,
	}
}

func (o FormatterOptions) shortHash(hash string) string {
	if o.HashLen <= 0 || len(hash) <= o.HashLen {
		return hash
	}
	return hash[:o.HashLen]
}

// relativeTime returns a human-readable time relative to now.
func (o FormatterOptions) relativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return humanize.RelTime(t, now(), "ago", "from now")
}

func formatOpacity(o float64) string {
	return fmt.Sprintf("%.2f", o)
}
