package domain

import "slices"

// FeatureSet is an insertion-ordered set of cargo feature tokens.
type FeatureSet struct {
	items []string
	seen  map[string]struct{}
}

// NewFeatureSet creates a set holding tokens in order, without duplicates.
func NewFeatureSet(tokens ...string) *FeatureSet {
	fs := &FeatureSet{seen: make(map[string]struct{})}
	fs.Add(tokens...)
	return fs
}

// Add appends every token that is not present yet. Empty tokens are ignored.
func (fs *FeatureSet) Add(tokens ...string) {
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := fs.seen[t]; ok {
			continue
		}
		fs.seen[t] = struct{}{}
		fs.items = append(fs.items, t)
	}
}

// Has reports whether token is in the set.
func (fs *FeatureSet) Has(token string) bool {
	_, ok := fs.seen[token]
	return ok
}

// HasAny reports whether any of tokens is in the set.
func (fs *FeatureSet) HasAny(tokens ...string) bool {
	return slices.ContainsFunc(tokens, fs.Has)
}

// List returns a copy of the tokens in insertion order.
func (fs *FeatureSet) List() []string {
	return slices.Clone(fs.items)
}
