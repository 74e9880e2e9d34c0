// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entry is one entity/answer pair within a category.
type Entry struct {
	// Entity is the subject of the question, trimmed. Unique within its
	// category under case-insensitive comparison.
	Entity string `json:"entity" yaml:"entity"`

	// Answer is the free-text response.
	Answer string `json:"answer" yaml:"answer"`
}

// ExportEntry is an Entry tagged with its category, used when the whole
// knowledge base is flattened for export.
type ExportEntry struct {
	Category string `json:"category" yaml:"category"`
	Entity   string `json:"entity" yaml:"entity"`
	Answer   string `json:"answer" yaml:"answer"`
}
