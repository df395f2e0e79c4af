/*
   Copyright 2026 The resources-io Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package segmenttrie indexes dot-separated keys by prefix, one node per
// segment, with "*" matching exactly one segment.
package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard matches any single segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned by Insert for empty prefixes, empty or
// malformed segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie maps key prefixes to values. It is built once and then only read, so
// concurrent lookups need no locking.
type Trie[T any] struct {
	root *node[T]
	size int
}

type node[T any] struct {
	children map[string]*node[T]
	set      bool
	val      T
	pattern  string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{root: &node[T]{}}
}

// Len is the number of stored prefixes.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert stores val under prefix, replacing any previous value for the same
// prefix. Examples: "games", "games.moves", "games.*.list".
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	n := t.root
	for _, s := range segs {
		if n.children == nil {
			n.children = make(map[string]*node[T])
		}
		next, ok := n.children[s]
		if !ok {
			next = &node[T]{}
			n.children[s] = next
		}
		n = next
	}
	if !n.set {
		t.size++
	}
	n.set, n.val, n.pattern = true, val, prefix
	return nil
}

// Match returns the value of the longest stored prefix of key. At equal
// depth a concrete segment beats the wildcard. Malformed keys never match.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched prefix as it was
// inserted.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil || !validKey(key) {
		return zero, false, ""
	}
	best, _ := t.root.longest(key, 0, 0, nil, -1)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// longest walks key from byte offset off. depth segments have been consumed;
// best/bestDepth carry the deepest valued node seen so far.
func (n *node[T]) longest(key string, off, depth int, best *node[T], bestDepth int) (*node[T], int) {
	if n.set && depth > bestDepth {
		best, bestDepth = n, depth
	}
	if off >= len(key) || len(n.children) == 0 {
		return best, bestDepth
	}
	end := strings.IndexByte(key[off:], '.')
	if end < 0 {
		end = len(key)
	} else {
		end += off
	}
	if c, ok := n.children[key[off:end]]; ok {
		best, bestDepth = c.longest(key, end+1, depth+1, best, bestDepth)
	}
	if c, ok := n.children[Wildcard]; ok {
		best, bestDepth = c.longest(key, end+1, depth+1, best, bestDepth)
	}
	return best, bestDepth
}

// validKey reports whether every segment of key is [a-z][a-z0-9_]*.
func validKey(key string) bool {
	for s := range strings.SplitSeq(key, ".") {
		if !validSegment(s) {
			return false
		}
	}
	return true
}

func validSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !segmentByte(s[i]) {
			return false
		}
	}
	return true
}

func segmentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
