package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/reticle/internal/cache"
)

// JSONFormatter formats entries as a JSON array.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes entries as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, entries []cache.Entry) error {
	if entries == nil {
		entries = []cache.Entry{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}
