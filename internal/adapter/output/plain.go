package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/reticle/internal/cache"
)

// PlainFormatter writes one line per entry.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes entries as plain text.
func (f *PlainFormatter) Format(w io.Writer, entries []cache.Entry) error {
	for _, e := range entries {
		_, err := fmt.Fprintf(w, "%s  x=%d y=%d opacity=%s  %s (%s)\n",
			f.opts.shortHash(e.Hash),
			e.TargetX,
			e.TargetY,
			formatOpacity(e.Opacity),
			e.PathForReadability,
			f.opts.relativeTime(e.UpdatedAt),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatParams describes a single parameter set, as printed by clear.
func FormatParams(p cache.CachedParams) string {
	return fmt.Sprintf("path=%s x=%d y=%d opacity=%s",
		p.PathForReadability, p.TargetX, p.TargetY, formatOpacity(p.Opacity))
}
