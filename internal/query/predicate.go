// Package query compiles search requests into storage-agnostic predicate
// trees. A compiled predicate can be evaluated directly against in-memory
// rows or lowered to a SQL WHERE clause; both evaluations share the same
// semantics, so listings behave identically regardless of the backing store.
package query

import (
	"strings"

	"github.com/google/uuid"
)

// Field names a transaction attribute a text match applies to.
type Field int

const (
	FieldDescription Field = iota
	FieldTag
)

// Subject is the projection of a transaction the in-memory evaluator sees.
type Subject struct {
	OwnerID     uuid.UUID
	Description string
	Tags        []string
}

// Predicate is one node of a boolean filter tree.
type Predicate interface {
	// Matches evaluates the predicate against an in-memory row.
	Matches(s Subject) bool
}

// And is satisfied when every operand is. An empty And is satisfied.
type And struct {
	Operands []Predicate
}

func (p And) Matches(s Subject) bool {
	for _, op := range p.Operands {
		if !op.Matches(s) {
			return false
		}
	}
	return true
}

// Or is satisfied when at least one operand is. An empty Or is not satisfied.
type Or struct {
	Operands []Predicate
}

func (p Or) Matches(s Subject) bool {
	for _, op := range p.Operands {
		if op.Matches(s) {
			return true
		}
	}
	return false
}

// Not inverts its operand.
type Not struct {
	Operand Predicate
}

func (p Not) Matches(s Subject) bool {
	return !p.Operand.Matches(s)
}

// TextMatch is satisfied when the term appears as a case-insensitive
// substring of the addressed field. For FieldTag, any tag may match.
type TextMatch struct {
	Field Field
	Term  string
}

func (p TextMatch) Matches(s Subject) bool {
	term := strings.ToLower(p.Term)

	switch p.Field {
	case FieldDescription:
		return strings.Contains(strings.ToLower(s.Description), term)
	case FieldTag:
		for _, tag := range s.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
	}
	return false
}

// HasTag is satisfied when the row carries the exact (normalized) tag.
type HasTag struct {
	Tag string
}

func (p HasTag) Matches(s Subject) bool {
	want := strings.ToLower(strings.TrimSpace(p.Tag))
	for _, tag := range s.Tags {
		if strings.ToLower(tag) == want {
			return true
		}
	}
	return false
}

// OwnerEquals scopes the predicate to a single owner.
type OwnerEquals struct {
	OwnerID uuid.UUID
}

func (p OwnerEquals) Matches(s Subject) bool {
	return s.OwnerID == p.OwnerID
}
