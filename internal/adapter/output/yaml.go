package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/reticle/internal/cache"
)

// YAMLFormatter formats entries as a YAML sequence.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes entries as YAML.
func (f *YAMLFormatter) Format(w io.Writer, entries []cache.Entry) error {
	if entries == nil {
		entries = []cache.Entry{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(entries); err != nil {
		return err
	}
	return encoder.Close()
}
