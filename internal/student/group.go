package student

// Index is an ordered multimap from a grouping key to the students sharing it.
// Keys remember the order in which they were first seen and each list keeps
// the order in which students were added.
type Index struct {
	keys  []string
	lists map[string][]*Student
}

// NewIndex creates an empty Index
func NewIndex() *Index {
	return &Index{
		keys:  make([]string, 0),
		lists: make(map[string][]*Student),
	}
}

// Add appends a student to the list for key, creating the list on first sight
func (i *Index) Add(key string, s *Student) {
	if _, exists := i.lists[key]; !exists {
		i.keys = append(i.keys, key)
		i.lists[key] = make([]*Student, 0, 1)
	}
	i.lists[key] = append(i.lists[key], s)
}

// Keys returns the keys in first-seen order
func (i *Index) Keys() []string {
	return clone(i.keys)
}

// Get returns a copy of the list for key, nil if the key is unknown
func (i *Index) Get(key string) []*Student {
	list, ok := i.lists[key]
	if !ok {
		return nil
	}
	out := make([]*Student, len(list))
	copy(out, list)
	return out
}

// Count returns the number of students under key
func (i *Index) Count(key string) int {
	return len(i.lists[key])
}

// Len returns the number of distinct keys
func (i *Index) Len() int {
	return len(i.keys)
}

// Grouping holds the two groupings built over one roster
type Grouping struct {
	ByYear    *Index
	ByAdvisor *Index
	total     int
}

// Group builds both groupings in a single pass over students.
// Keys are compared exactly; nothing is sorted here.
func Group(students []*Student) *Grouping {
	g := &Grouping{
		ByYear:    NewIndex(),
		ByAdvisor: NewIndex(),
	}

	for _, s := range students {
		g.ByYear.Add(s.Year(), s)
		g.ByAdvisor.Add(s.Advisor(), s)
		g.total++
	}

	return g
}

// Total returns the number of students grouped
func (g *Grouping) Total() int {
	return g.total
}
