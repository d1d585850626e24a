package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/reticle/internal/cache"
)

// HashesFormatter outputs just the content hashes, one per line.
// Useful for scripting, e.g. piping into reticle clear.
type HashesFormatter struct{}

// NewHashesFormatter creates a new hashes formatter.
func NewHashesFormatter() *HashesFormatter {
	return &HashesFormatter{}
}

// Format writes full hashes to the writer, one per line.
func (f *HashesFormatter) Format(w io.Writer, entries []cache.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.Hash); err != nil {
			return err
		}
	}
	return nil
}
