// Package dictionary loads a bilingual word list and looks headwords up in it.
package dictionary

import "golang.org/x/text/cases"

// Dictionary is an immutable, ordered collection of entries.
// The order is the order of the records in the source file.
type Dictionary struct {
	entries []Entry
	keys    []string
}

// New builds a Dictionary from entries. The entries are copied, including
// their categories.
func New(entries []Entry) *Dictionary {
	d := &Dictionary{
		entries: cloneEntries(entries),
		keys:    make([]string, len(entries)),
	}

	fold := cases.Fold()
	for i, entry := range d.entries {
		d.keys[i] = fold.String(entry.Word)
	}
	return d
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns a deep copy of all entries in file order.
func (d *Dictionary) Entries() []Entry {
	return cloneEntries(d.entries)
}

func cloneEntries(entries []Entry) []Entry {
	cloned := make([]Entry, len(entries))
	for i, entry := range entries {
		if entry.Category != nil {
			category := *entry.Category
			entry.Category = &category
		}
		cloned[i] = entry
	}
	return cloned
}
