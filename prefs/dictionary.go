// This file is part of GopherDS.
//
// GopherDS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDS.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Dictionary associates a key with a Pref.
type Dictionary struct {
	entries map[string]Pref
}

// NewDictionary is the preferred method of initialisation for the Dictionary
// type.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: make(map[string]Pref),
	}
}

// Add a Pref to the dictionary under key. An existing entry with the same key
// is replaced.
func (dct *Dictionary) Add(key string, p Pref) {
	dct.entries[key] = p
}

// Keys returns the sorted list of keys in the dictionary.
func (dct *Dictionary) Keys() []string {
	keys := make([]string, 0, len(dct.entries))
	for k := range dct.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get the Pref associated with key.
func (dct *Dictionary) Get(key string) (Pref, bool) {
	p, ok := dct.entries[key]
	return p, ok
}

// Apply a preferences string of the form "key::value; key::value". Entries
// that are malformed are ignored. Entries with keys that are not in the
// dictionary are returned, sorted and in the same form, as the unused string.
func (dct *Dictionary) Apply(prefs string) (string, error) {
	unused := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			continue
		}

		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])

		pref, ok := dct.entries[key]
		if !ok {
			unused[key] = val
			continue
		}

		if err := pref.Set(val); err != nil {
			return "", fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	keys := make([]string, 0, len(unused))
	for k := range unused {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, unused[k]))
	}

	return strings.TrimSuffix(s.String(), "; "), nil
}

// String returns the dictionary as a preferences string suitable for Apply().
func (dct *Dictionary) String() string {
	s := strings.Builder{}
	for _, k := range dct.Keys() {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, dct.entries[k].String()))
	}
	return strings.TrimSuffix(s.String(), "; ")
}
