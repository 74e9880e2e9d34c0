//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/pdiddy/askbase/internal/knowledge"
	"github.com/pdiddy/askbase/pkg/types"
)

// sampleFile is where Sample writes the starter knowledge base.
const sampleFile = "sample.ini"

var sampleEntries = []types.ExportEntry{
	{Category: "who", Entity: "Ada Lovelace", Answer: "A mathematician who wrote the first published algorithm."},
	{Category: "who", Entity: "Grace Hopper", Answer: "A computer scientist who built the first compiler."},
	{Category: "what", Entity: "a compiler", Answer: "A program that translates source code into machine code."},
	{Category: "when", Entity: "the moon landing", Answer: "20 July 1969."},
	{Category: "where", Entity: "the Eiffel Tower", Answer: "Paris, France."},
	{Category: "why", Entity: "the sky blue", Answer: "Sunlight scatters off air molecules, blue most of all."},
	{Category: "how", Entity: "a rainbow formed", Answer: "Sunlight refracts and reflects inside raindrops."},
}

// Sample writes a starter knowledge file to sample.ini.
func Sample() error {
	store := knowledge.NewStore(types.KnowledgeConfig{})
	for _, e := range sampleEntries {
		if err := store.Put(e.Category, e.Entity, e.Answer); err != nil {
			return fmt.Errorf("adding %s %q: %w", e.Category, e.Entity, err)
		}
	}

	f, err := os.Create(sampleFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", sampleFile, err)
	}
	if err := store.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", sampleFile, err)
	}
	fmt.Printf("Wrote %d responses to %s\n", store.Len(), sampleFile)
	return nil
}
