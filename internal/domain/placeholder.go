package domain

import (
	"fmt"
	"sort"
)

// Placeholder is a single token → replacement pair for a contract template.
// Key is matched literally, never as a pattern.
type Placeholder struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Placeholders is an ordered placeholder map. Order matters: substitution
// applies the pairs in slice order.
type Placeholders []Placeholder

// PlaceholdersFromMap converts a Go map into Placeholders sorted by key, so
// the substitution order is deterministic.
func PlaceholdersFromMap(m map[string]string) Placeholders {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Placeholders, 0, len(keys))
	for _, k := range keys {
		out = append(out, Placeholder{Key: k, Value: m[k]})
	}
	return out
}

// Get returns the value of the first pair with the given key.
func (p Placeholders) Get(key string) (string, bool) {
	for _, ph := range p {
		if ph.Key == key {
			return ph.Value, true
		}
	}
	return "", false
}

// GetOrDefault returns the value for key, or fallback when key is absent.
func (p Placeholders) GetOrDefault(key, fallback string) string {
	if v, ok := p.Get(key); ok {
		return v
	}
	return fallback
}

// Set replaces the value of an existing key in place, or appends a new pair.
// A later Set never changes the position of an existing key.
func (p Placeholders) Set(key, value string) Placeholders {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Placeholder{Key: key, Value: value})
}

// Validate rejects pairs with an empty key. An empty key would match at
// every position of every paragraph.
func (p Placeholders) Validate() error {
	for i, ph := range p {
		if ph.Key == "" {
			return fmt.Errorf("%w: placeholder %d has an empty key", ErrValidation, i)
		}
	}
	return nil
}
