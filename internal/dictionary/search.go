package dictionary

import "golang.org/x/text/cases"

// Search returns every entry whose headword equals query under Unicode case
// folding. Matches keep their dictionary order. The query is compared as
// given: it is not trimmed or normalized, and an empty query only matches
// empty headwords.
//
// The returned pointers refer to the dictionary's own entries and must not be
// modified.
func (d *Dictionary) Search(query string) []*Entry {
	key := cases.Fold().String(query)

	var matches []*Entry
	for i := range d.entries {
		if d.keys[i] == key {
			matches = append(matches, &d.entries[i])
		}
	}
	return matches
}
