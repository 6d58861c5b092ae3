package section

// Index maps between sections and rows of a header-plus-items layout, where
// each section occupies one header row followed by one row per entry.
type Index struct {
	keys   []string
	starts []int // header row of each section
	total  int
	byKey  map[string]int
}

// NewIndex builds the row layout for sections.
func NewIndex[T any](sections []Section[T]) Index {
	idx := Index{
		keys:   make([]string, len(sections)),
		starts: make([]int, len(sections)),
		byKey:  make(map[string]int, len(sections)),
	}
	row := 0
	for i, s := range sections {
		idx.keys[i] = s.Key
		idx.starts[i] = row
		if _, ok := idx.byKey[s.Key]; !ok {
			idx.byKey[s.Key] = i
		}
		row += 1 + len(s.Data)
	}
	idx.total = row
	return idx
}

// Len returns the number of sections.
func (x Index) Len() int {
	return len(x.keys)
}

// Rows returns the total number of rows, headers included.
func (x Index) Rows() int {
	return x.total
}

// Key returns the key of section i, or "" when out of range.
func (x Index) Key(i int) string {
	if i < 0 || i >= len(x.keys) {
		return ""
	}
	return x.keys[i]
}

// Keys returns a copy of the section keys.
func (x Index) Keys() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// Lookup returns the section index for a key.
func (x Index) Lookup(key string) (int, bool) {
	i, ok := x.byKey[key]
	return i, ok
}

// StartRow returns the header row of section i, or -1 when out of range.
func (x Index) StartRow(i int) int {
	if i < 0 || i >= len(x.starts) {
		return -1
	}
	return x.starts[i]
}

// SectionAt returns the section containing row, clamped to valid sections.
// Returns -1 when there are no sections.
func (x Index) SectionAt(row int) int {
	if len(x.starts) == 0 {
		return -1
	}
	lo, hi := 0, len(x.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if x.starts[mid] <= row {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// IsHeader reports whether row is a section header row.
func (x Index) IsHeader(row int) bool {
	s := x.SectionAt(row)
	return s >= 0 && x.starts[s] == row
}

// Locate splits a row into its section and the entry offset within it.
// The entry offset is -1 for header rows.
func (x Index) Locate(row int) (sectionIdx, entry int) {
	s := x.SectionAt(row)
	if s < 0 {
		return -1, -1
	}
	return s, row - x.starts[s] - 1
}
