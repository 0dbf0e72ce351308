// Package catalog resolves part references against an in-memory catalog of part definitions.
// Lookups never fail loudly: an unresolved reference is reported as ok == false.
package catalog

import (
	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
)

// Ref is a reference normalized to id and/or name. At least one of HasID or Name is set
// for a resolvable reference.
type Ref struct {
	ID    int
	HasID bool
	Name  string
}

// ByID creates an id reference
func ByID(id int) Ref {
	return Ref{ID: id, HasID: true}
}

// ByName creates a name reference
func ByName(name string) Ref {
	return Ref{Name: name}
}

// IsZero reports whether the reference carries neither id nor name
func (r Ref) IsZero() bool {
	return !r.HasID && r.Name == ""
}

// RefFrom normalizes a loose part reference. Explicit id/name on the reference win over the
// inline definition carried by UI-shaped references.
func RefFrom(ref mechanics.PartReference) Ref {
	var out Ref
	switch {
	case ref.ID != nil:
		out.ID, out.HasID = *ref.ID, true
	case ref.Part != nil:
		out.ID, out.HasID = ref.Part.ID, true
	}

	out.Name = ref.Name
	if out.Name == "" && ref.Part != nil {
		out.Name = ref.Part.Name
	}
	return out
}

// PartKey identifies a well-known part by its canonical name
type PartKey struct {
	Name string
}

// Ref returns the key as a name-only lookup reference
func (k PartKey) Ref() Ref {
	return ByName(k.Name)
}

// Lookup resolves a normalized reference: exact id match first, then exact
// (case-sensitive) name match.
func Lookup(parts []mechanics.PartDefinition, ref Ref) (mechanics.PartDefinition, bool) {
	if ref.HasID {
		for _, p := range parts {
			if p.ID == ref.ID {
				return p, true
			}
		}
	}
	if ref.Name != "" {
		for _, p := range parts {
			if p.Name == ref.Name {
				return p, true
			}
		}
	}
	return mechanics.PartDefinition{}, false
}

// Resolve resolves a part reference in either UI or saved shape
func Resolve(parts []mechanics.PartDefinition, ref mechanics.PartReference) (mechanics.PartDefinition, bool) {
	return Lookup(parts, RefFrom(ref))
}

// Find resolves a well-known part key
func Find(parts []mechanics.PartDefinition, key PartKey) (mechanics.PartDefinition, bool) {
	return Lookup(parts, key.Ref())
}

// Matches reports whether a reference resolves to the same catalog entry as key
func Matches(parts []mechanics.PartDefinition, ref mechanics.PartReference, key PartKey) bool {
	def, ok := Resolve(parts, ref)
	if !ok {
		return false
	}
	target, ok := Find(parts, key)
	return ok && target.ID == def.ID && target.Name == def.Name
}

// FindReference returns the first reference in refs that resolves to key
func FindReference(
	parts []mechanics.PartDefinition,
	refs []mechanics.PartReference,
	key PartKey,
) (mechanics.PartReference, bool) {
	for _, ref := range refs {
		if Matches(parts, ref, key) {
			return ref, true
		}
	}
	return mechanics.PartReference{}, false
}

// Normalize returns a copy of refs with negative option levels clamped to zero
func Normalize(refs []mechanics.PartReference) []mechanics.PartReference {
	out := make([]mechanics.PartReference, len(refs))
	for i, ref := range refs {
		ref.Op1Level = max(0, ref.Op1Level)
		ref.Op2Level = max(0, ref.Op2Level)
		ref.Op3Level = max(0, ref.Op3Level)
		out[i] = ref
	}
	return out
}
