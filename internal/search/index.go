// Package search is an in-memory weighted index over catalog documents.
package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/jask/dpselect/internal/catalog"
)

// Hit is one scored match.
type Hit[T any] struct {
	Item  T
	Doc   catalog.Document
	Score float64
}

type entry[T any] struct {
	item T
	doc  catalog.Document
	// lowercased copies used for matching
	name, display, desc string
	parts              []string
}

// Index scores documents against a search term using catalog.FieldBoosts.
type Index[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
	boosts  map[string]float64
}

// NewIndex returns an empty index using the default field boosts.
func NewIndex[T any]() *Index[T] {
	return &Index[T]{boosts: catalog.FieldBoosts}
}

// Add indexes item under doc.
func (ix *Index[T]) Add(doc catalog.Document, item T) {
	parts := make([]string, 0, len(doc.FQNParts))
	for _, p := range doc.FQNParts {
		parts = append(parts, strings.ToLower(p))
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries = append(ix.entries, entry[T]{
		item:    item,
		doc:     doc,
		name:    strings.ToLower(doc.Name),
		display: strings.ToLower(doc.DisplayName),
		desc:    strings.ToLower(doc.Description),
		parts:   parts,
	})
}

// Len returns the number of indexed documents.
func (ix *Index[T]) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Search returns up to limit hits starting at offset, and the total number of matches.
// Hits are ordered by score, then by fully-qualified name. An empty term matches
// everything with score zero.
func (ix *Index[T]) Search(term string, limit, offset int) ([]Hit[T], int) {
	term = strings.ToLower(strings.TrimSpace(term))
	ix.mu.RLock()
	hits := make([]Hit[T], 0, len(ix.entries))
	for _, e := range ix.entries {
		score, ok := ix.score(e, term)
		if !ok {
			continue
		}
		hits = append(hits, Hit[T]{Item: e.item, Doc: e.doc, Score: score})
	}
	ix.mu.RUnlock()

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Doc.FullyQualifiedName < hits[j].Doc.FullyQualifiedName
	})

	total := len(hits)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return nil, total
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return hits[offset:end], total
}

func (ix *Index[T]) score(e entry[T], term string) (float64, bool) {
	if term == "" {
		return 0, true
	}
	var s float64
	s += ix.textScore(e.display, term, catalog.FieldDisplayName, catalog.FieldDisplayNameKeyword)
	s += ix.textScore(e.name, term, catalog.FieldName, catalog.FieldNameKeyword)
	if strings.Contains(e.desc, term) {
		s += ix.boosts[catalog.FieldDescription]
	}
	for _, p := range e.parts {
		if strings.Contains(p, term) {
			s += ix.boosts[catalog.FieldFQNParts]
			break
		}
	}
	return s, s > 0
}

// textScore scores one text field. An exact match earns the keyword boost on top of
// the field boost it gets as a substring match.
func (ix *Index[T]) textScore(value, term, field, keyword string) float64 {
	switch {
	case value == "":
		return 0
	case value == term:
		return ix.boosts[keyword] + ix.boosts[field]
	case strings.Contains(value, term):
		return ix.boosts[field]
	case fuzzyMatch(value, term):
		return ix.boosts[field] / 2
	}
	return 0
}

// fuzzyMatch reports whether any word of value is within the edit budget of term.
func fuzzyMatch(value, term string) bool {
	budget := editBudget(len(term))
	if budget == 0 {
		return false
	}
	for _, w := range strings.FieldsFunc(value, isSeparator) {
		if abs(len(w)-len(term)) > budget {
			continue
		}
		if levenshtein.ComputeDistance(w, term) <= budget {
			return true
		}
	}
	return false
}

func editBudget(n int) int {
	switch {
	case n >= 8:
		return 2
	case n >= 4:
		return 1
	}
	return 0
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.'
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
