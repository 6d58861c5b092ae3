// Package section groups a flat list of names into ordered sections keyed by
// their first letter.
package section

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackKey is the key given to names with no usable first character.
const FallbackKey = "#"

// Section is a key plus the entries sharing it, in input order.
type Section[T any] struct {
	Key  string
	Data []T
}

// Len returns the number of entries in the section.
func (s Section[T]) Len() int {
	return len(s.Data)
}

// KeyFunc derives a section key from a display name.
type KeyFunc func(name string) string

// Group partitions items into sections. Sections appear in the order their
// key was first seen; entries keep their relative order. A nil key defaults
// to FirstLetter.
func Group[T any](items []T, name func(T) string, key KeyFunc) []Section[T] {
	if len(items) == 0 {
		return nil
	}
	if key == nil {
		key = FirstLetter
	}

	sections := make([]Section[T], 0)
	positions := make(map[string]int)
	for _, item := range items {
		k := key(name(item))
		idx, ok := positions[k]
		if !ok {
			idx = len(sections)
			positions[k] = idx
			sections = append(sections, Section[T]{Key: k})
		}
		sections[idx].Data = append(sections[idx].Data, item)
	}
	return sections
}

// Flatten concatenates section entries in section order.
func Flatten[T any](sections []Section[T]) []T {
	n := 0
	for _, s := range sections {
		n += len(s.Data)
	}
	out := make([]T, 0, n)
	for _, s := range sections {
		out = append(out, s.Data...)
	}
	return out
}

// Keys returns the section keys in order.
func Keys[T any](sections []Section[T]) []string {
	keys := make([]string, len(sections))
	for i, s := range sections {
		keys[i] = s.Key
	}
	return keys
}

// Exact keys a name by its first grapheme cluster, untouched.
func Exact(name string) string {
	first := firstGrapheme(strings.TrimSpace(name))
	if first == "" {
		return FallbackKey
	}
	return first
}

// FirstLetter keys a name by its first grapheme cluster with diacritics
// removed and case folded to upper, so "Åland" and "Albania" share "A".
// Names starting with something other than a letter key to FallbackKey.
func FirstLetter(name string) string {
	first := firstGrapheme(strings.TrimSpace(name))
	if first == "" {
		return FallbackKey
	}
	folded, _, err := transform.String(foldDiacritics(), first)
	if err != nil || folded == "" {
		folded = first
	}
	r := []rune(folded)[0]
	if !unicode.IsLetter(r) {
		return FallbackKey
	}
	return string(unicode.ToUpper(r))
}

func foldDiacritics() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func firstGrapheme(s string) string {
	if s == "" {
		return ""
	}
	gr := uniseg.NewGraphemes(s)
	if gr.Next() {
		return gr.Str()
	}
	return ""
}
