// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge implements the question-answering knowledge base: a
// fixed set of question categories, each owning an ordered list of
// entity/answer entries, with load and save to a flat [section] key=value
// text format.
//
// A Store is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package knowledge

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"

	"github.com/pdiddy/askbase/pkg/types"
)

// section is one category and its entries in insertion order. index maps
// the folded entity to its position in entries.
type section struct {
	name    string
	entries []types.Entry
	index   map[string]int
}

// Store holds the knowledge base for one session.
type Store struct {
	sections []*section
	byName   map[string]*section
	fold     cases.Caser

	maxEntity  int
	maxAnswer  int
	maxEntries int
	overflow   types.OverflowPolicy
	size       int
}

// NewStore builds an empty store for the categories in cfg. Zero-valued
// settings take their defaults. Duplicate category names (compared
// case-insensitively) keep their first position.
func NewStore(cfg types.KnowledgeConfig) *Store {
	cfg.Normalize()

	s := &Store{
		byName:     make(map[string]*section, len(cfg.Categories)),
		fold:       cases.Fold(),
		maxEntity:  cfg.MaxEntity,
		maxAnswer:  cfg.MaxAnswer,
		maxEntries: cfg.MaxEntries,
		overflow:   cfg.Overflow,
	}
	for _, name := range cfg.Categories {
		key := s.key(name)
		if _, dup := s.byName[key]; dup {
			continue
		}
		sec := &section{name: strings.ToLower(name), index: map[string]int{}}
		s.sections = append(s.sections, sec)
		s.byName[key] = sec
	}
	return s
}

// Categories returns the recognized category names in write order.
func (s *Store) Categories() []string {
	names := make([]string, len(s.sections))
	for i, sec := range s.sections {
		names[i] = sec.name
	}
	return names
}

// IsCategory reports whether name is a recognized category.
func (s *Store) IsCategory(name string) bool {
	_, ok := s.byName[s.key(name)]
	return ok
}

// MaxEntity returns the configured entity bound in characters.
func (s *Store) MaxEntity() int {
	return s.maxEntity
}

// FitsEntity reports whether entity, once trimmed, is accepted as a key
// under the overflow policy.
func (s *Store) FitsEntity(entity string) bool {
	return s.overflow == types.OverflowTruncate ||
		utf8.RuneCountInString(strings.TrimSpace(entity)) <= s.maxEntity
}

// Len returns the total number of entries across all categories.
func (s *Store) Len() int {
	return s.size
}

// Entries returns a copy of the entries stored under category, in
// insertion order.
func (s *Store) Entries(category string) ([]types.Entry, error) {
	sec, err := s.section(category)
	if err != nil {
		return nil, err
	}
	out := make([]types.Entry, len(sec.entries))
	copy(out, sec.entries)
	return out, nil
}

// Get returns the answer stored for entity under category.
func (s *Store) Get(category, entity string) (string, error) {
	sec, err := s.section(category)
	if err != nil {
		return "", err
	}
	entity = s.lookupEntity(entity)
	i, ok := sec.index[s.key(entity)]
	if !ok {
		return "", errors.Wrapf(ErrNotFound, "%s %q", sec.name, entity)
	}
	return sec.entries[i].Answer, nil
}

// Put stores answer for entity under category. Both are trimmed. An
// existing entry with the same entity (case-insensitive) is overwritten in
// place and keeps its position; otherwise the entry is appended.
func (s *Store) Put(category, entity, answer string) error {
	sec, err := s.section(category)
	if err != nil {
		return err
	}

	entity = strings.TrimSpace(entity)
	if entity == "" {
		return errors.Wrapf(ErrEmptyEntity, "%s", sec.name)
	}
	if entity, err = s.bound(entity, s.maxEntity, "entity"); err != nil {
		return err
	}
	if answer, err = s.bound(strings.TrimSpace(answer), s.maxAnswer, "answer"); err != nil {
		return err
	}

	key := s.key(entity)
	if i, ok := sec.index[key]; ok {
		sec.entries[i].Answer = answer
		return nil
	}

	if s.maxEntries > 0 && s.size >= s.maxEntries {
		return errors.WithHintf(
			errors.Wrapf(ErrOutOfMemory, "adding %s %q", sec.name, entity),
			"the knowledge base holds at most %d entries", s.maxEntries)
	}
	sec.index[key] = len(sec.entries)
	sec.entries = append(sec.entries, types.Entry{Entity: entity, Answer: answer})
	s.size++
	return nil
}

// Reset removes every entry. The category set is unchanged.
func (s *Store) Reset() {
	for _, sec := range s.sections {
		sec.entries = nil
		sec.index = map[string]int{}
	}
	s.size = 0
}

func (s *Store) section(category string) (*section, error) {
	sec, ok := s.byName[s.key(category)]
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(ErrInvalidCategory, "%q", category),
			"valid categories: %s", strings.Join(s.Categories(), ", "))
	}
	return sec, nil
}

// key folds text for case-insensitive comparison. Callers trim entities
// first; category names are matched exactly apart from case.
func (s *Store) key(text string) string {
	return s.fold.String(text)
}

// lookupEntity normalizes entity the way Put stores it, so an entity
// truncated on the way in is found again by its full text.
func (s *Store) lookupEntity(entity string) string {
	entity = strings.TrimSpace(entity)
	if s.overflow == types.OverflowTruncate {
		entity = truncate(entity, s.maxEntity)
	}
	return entity
}

// bound applies the overflow policy to text longer than limit characters.
func (s *Store) bound(text string, limit int, what string) (string, error) {
	if utf8.RuneCountInString(text) <= limit {
		return text, nil
	}
	if s.overflow == types.OverflowTruncate {
		return truncate(text, limit), nil
	}
	return "", errors.Wrapf(ErrTooLong, "%s exceeds %d characters", what, limit)
}

func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return strings.TrimSpace(string([]rune(text)[:limit]))
}
