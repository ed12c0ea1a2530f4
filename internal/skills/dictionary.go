package skills

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry describes one canonical skill: its known synonyms/aliases and the
// category it belongs to (e.g. "programming languages").
type Entry struct {
	Synonyms []string `json:"synonyms,omitempty"`
	Category string   `json:"category,omitempty"`
}

// Dictionary is a static skill lookup keyed by normalized skill name. It is
// consumed read-only by the skill matcher.
type Dictionary struct {
	entries map[string]Entry
	// synonymOf maps every normalized synonym back to its canonical name so
	// alias lookups work in both directions.
	synonymOf map[string]string
}

// NewDictionary builds a Dictionary from raw entries. Keys and synonyms are
// normalized; later entries win on key collisions.
func NewDictionary(raw map[string]Entry) *Dictionary {
	d := &Dictionary{
		entries:   make(map[string]Entry, len(raw)),
		synonymOf: make(map[string]string),
	}
	for name, entry := range raw {
		canonical := Normalize(name)
		if canonical == "" {
			continue
		}
		normalized := Entry{Category: Normalize(entry.Category)}
		for _, syn := range entry.Synonyms {
			n := Normalize(syn)
			if n == "" || n == canonical {
				continue
			}
			normalized.Synonyms = append(normalized.Synonyms, n)
			d.synonymOf[n] = canonical
		}
		d.entries[canonical] = normalized
	}
	return d
}

// LoadDictionary reads a dictionary from a JSON file of the form
// {"skill": {"synonyms": [...], "category": "..."}} and merges it over the
// built-in defaults. Entries in the file override defaults with the same key.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill dictionary %s: %w", path, err)
	}

	var raw map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse skill dictionary JSON: %w", err)
	}

	merged := make(map[string]Entry, len(defaultEntries)+len(raw))
	for k, v := range defaultEntries {
		merged[k] = v
	}
	for k, v := range raw {
		merged[Normalize(k)] = v
	}
	return NewDictionary(merged), nil
}

// canonical resolves a normalized skill name to its canonical form, following
// the synonym table when the name itself is an alias.
func (d *Dictionary) canonical(normalized string) string {
	if _, ok := d.entries[normalized]; ok {
		return normalized
	}
	if main, ok := d.synonymOf[normalized]; ok {
		return main
	}
	return normalized
}

// AreSynonyms reports whether two normalized skill names resolve to the same
// canonical skill without being verbatim equal.
func (d *Dictionary) AreSynonyms(a, b string) bool {
	if a == b {
		return false
	}
	return d.canonical(a) == d.canonical(b)
}

// Category returns the category of a normalized skill name, resolving
// synonyms first. Empty when the skill is unknown.
func (d *Dictionary) Category(normalized string) string {
	return d.entries[d.canonical(normalized)].Category
}

// ShareCategory reports whether two normalized skill names belong to the same
// known category without being synonyms of each other.
func (d *Dictionary) ShareCategory(a, b string) bool {
	ca := d.Category(a)
	if ca == "" {
		return false
	}
	return ca == d.Category(b) && !d.AreSynonyms(a, b) && a != b
}

// Len returns the number of canonical entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
