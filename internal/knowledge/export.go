// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/askbase/pkg/types"
)

// ExportEntries flattens the store in write order.
func (s *Store) ExportEntries() []types.ExportEntry {
	entries := make([]types.ExportEntry, 0, s.size)
	for _, sec := range s.sections {
		for _, e := range sec.entries {
			entries = append(entries, types.ExportEntry{
				Category: sec.name,
				Entity:   e.Entity,
				Answer:   e.Answer,
			})
		}
	}
	return entries
}

// ExportYAML writes the flattened store to w as a YAML list. The output is
// for inspection only; Read does not accept it.
func (s *Store) ExportYAML(w io.Writer) error {
	data, err := yaml.Marshal(s.ExportEntries())
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	if _, err := w.Write(data); err != nil {
		return ioError(err, "writing YAML export")
	}
	return nil
}

// ExportJSON writes the flattened store to w as an indented JSON array.
func (s *Store) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.ExportEntries()); err != nil {
		return ioError(err, "writing JSON export")
	}
	return nil
}
