// Package resolve assigns synthetic entity ids and resolves free-text
// foreign-key references by fuzzy name matching.
//
// The exports reference other records by display name, not by id. Resolution
// is therefore a tolerance policy, not a lookup: exact match first, then
// containment, then a designated sentinel entity. An unmatched reference is
// a known data-quality compromise of the source, never an error.
package resolve

import (
	"fmt"
	"strings"

	"github.com/redacademy/academy-backend/internal/domain"
)

// SyntheticID builds the deterministic id for the seq-th record (1-based) of
// an entity type: "{prefix}-{seq zero-padded to 4 digits}".
func SyntheticID(prefix string, seq int) string {
	return fmt.Sprintf("%s-%04d", prefix, seq)
}

type candidate struct {
	id   string
	name string // normalized
}

// Resolver resolves name references against an ordered candidate set.
type Resolver struct {
	candidates []candidate
	fallbackID string
}

// NewResolver creates a Resolver that degrades to fallbackID when a
// reference matches no candidate.
func NewResolver(fallbackID string) *Resolver {
	return &Resolver{fallbackID: fallbackID}
}

// Add appends a candidate. Candidates are tried in insertion order, which
// must be the entity collection's natural input order.
func (r *Resolver) Add(id, name string) {
	r.candidates = append(r.candidates, candidate{id: id, name: domain.NormalizeName(name)})
}

// Resolve maps a free-text reference to a candidate id:
//
//  1. exact case-insensitive name equality;
//  2. containment either direction, first candidate in order wins;
//  3. the fallback id.
//
// The second return is false only on fallback. Resolve never fails.
func (r *Resolver) Resolve(ref string) (string, bool) {
	needle := domain.NormalizeName(ref)
	if needle == "" {
		return r.fallbackID, false
	}

	for _, c := range r.candidates {
		if c.name == needle {
			return c.id, true
		}
	}

	for _, c := range r.candidates {
		if c.name == "" {
			// An empty candidate name would containment-match everything.
			continue
		}
		if strings.Contains(c.name, needle) || strings.Contains(needle, c.name) {
			return c.id, true
		}
	}

	return r.fallbackID, false
}
