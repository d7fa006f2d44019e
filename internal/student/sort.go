package student

import (
	"sort"
)

// SortedKeys returns the index keys in ascending string order
func (i *Index) SortedKeys() []string {
	keys := i.Keys()
	sort.Strings(keys)
	return keys
}

// SortedByName returns the students under key ordered by full name
func (i *Index) SortedByName(key string) []*Student {
	list := i.Get(key)
	SortByName(list)
	return list
}

// SortByName orders students by full name ("Last, First"), keeping
// document order for equal names
func SortByName(students []*Student) {
	sort.SliceStable(students, func(a, b int) bool {
		return students[a].Name() < students[b].Name()
	})
}

// SortByLastName orders "Last, First" names by the text before the first
// comma, falling back to the full name when last names match
func SortByLastName(names []string) {
	sort.SliceStable(names, func(a, b int) bool {
		ka, kb := SortKey(names[a]), SortKey(names[b])
		if ka != kb {
			return ka < kb
		}
		return names[a] < names[b]
	})
}
