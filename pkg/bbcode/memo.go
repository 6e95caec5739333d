package bbcode

import (
	"slices"

	"github.com/dmitrymomot/bbfy/pkg/cache"
)

// memo caches conversion reports keyed by input. Reports are cloned on the
// way in and out so callers never share the Unclosed slice.
type memo struct {
	lru *cache.LRU[string, Report]
}

func newMemo(capacity int) *memo {
	return &memo{lru: cache.NewLRU[string, Report](capacity)}
}

func (m *memo) get(input string) (Report, bool) {
	r, ok := m.lru.Get(input)
	if !ok {
		return Report{}, false
	}
	return r.clone(), true
}

func (m *memo) put(input string, r Report) {
	m.lru.Put(input, r.clone())
}

func (m *memo) len() int {
	return m.lru.Len()
}

func (r Report) clone() Report {
	r.Unclosed = slices.Clone(r.Unclosed)
	return r
}
