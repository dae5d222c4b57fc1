package flags

import "strings"

// Flags is a packed multi-select attribute value, stored as a plain
// integer column. Bit i set means the member with value 1<<i is selected.
type Flags uint32

// Has reports whether value is set in f.
func Has(f, value Flags) bool {
	return f&value != 0
}

// Add returns f with value set.
func Add(f, value Flags) Flags {
	return f | value
}

// Remove returns f with value cleared.
func Remove(f, value Flags) Flags {
	return f &^ value
}

// Toggle returns f with value flipped.
func Toggle(f, value Flags) Flags {
	return f ^ value
}

// Member is one selectable value of a family: a power of two plus its
// display name.
type Member struct {
	Value Flags
	Name  string
}

// Family holds every selectable value of one attribute family.
// Declaration order is the canonical iteration order for Names.
type Family []Member

// Names expands f into display names, iterating the full family in
// declaration order. Bits the family does not define are invisible, so
// stored integers survive enum growth without migration.
func (fam Family) Names(f Flags) []string {
	names := make([]string, 0, len(fam))
	for _, m := range fam {
		if Has(f, m.Value) {
			names = append(names, m.Name)
		}
	}
	return names
}

// FromNames ORs together the values of every recognized name.
// Matching is case-insensitive; unknown names are silently skipped.
func (fam Family) FromNames(names []string) Flags {
	var f Flags
	for _, name := range names {
		for _, m := range fam {
			if strings.EqualFold(m.Name, name) {
				f = Add(f, m.Value)
				break
			}
		}
	}
	return f
}

// All returns the union of every member value in the family.
func (fam Family) All() Flags {
	var f Flags
	for _, m := range fam {
		f = Add(f, m.Value)
	}
	return f
}
