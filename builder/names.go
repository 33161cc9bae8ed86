// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/brianvoe/gofakeit"
)

// gofakeit draws from one package-level source; every seeded draw happens
// under this lock so concurrent generators stay reproducible.
var fakerMu sync.Mutex

// maxNameRedraws bounds how often a colliding name is redrawn before a
// numeric suffix is appended.
const maxNameRedraws = 4

// StationNameFn returns an IDFn producing street-style station names such as
// "Maple Junction". Names are distinct, start with a letter, and depend only
// on seed and index, so the same seed always names a network the same way.
// The returned function is safe for concurrent use.
func StationNameFn(seed int64) IDFn {
	t := &nameTable{seed: seed, used: make(map[string]bool)}

	return t.name
}

type nameTable struct {
	mu    sync.Mutex
	seed  int64
	names []string
	used  map[string]bool
}

func (t *nameTable) name(idx int) string {
	if idx < 0 {
		panic("StationNameFn: negative index " + strconv.Itoa(idx))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for len(t.names) <= idx {
		t.names = append(t.names, t.draw(len(t.names)))
	}

	return t.names[idx]
}

// draw generates the name at position k; names are filled strictly in order.
func (t *nameTable) draw(k int) string {
	fakerMu.Lock()
	defer fakerMu.Unlock()

	var name string
	for attempt := 0; attempt <= maxNameRedraws; attempt++ {
		gofakeit.Seed(t.seed*7919 + int64(k)*131 + int64(attempt))
		name = clean(gofakeit.StreetName() + " " + gofakeit.StreetSuffix())
		if name != "" && !t.used[name] {
			t.used[name] = true
			return name
		}
	}
	if name == "" {
		name = "Station"
	}
	name = name + " " + strconv.Itoa(k)
	t.used[name] = true

	return name
}

// clean trims the name and drops leading runes that are not letters.
func clean(s string) string {
	s = strings.TrimSpace(s)

	return strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
}
