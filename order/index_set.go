package order

// indexSet is an insertion-ordered set of node indices.
type indexSet struct {
	items []int
	seen  map[int]struct{}
}

func newIndexSet(capacity int) *indexSet {
	return &indexSet{
		items: make([]int, 0, capacity),
		seen:  make(map[int]struct{}, capacity),
	}
}

func (s *indexSet) add(i int) bool {
	if s.seen == nil {
		s.seen = make(map[int]struct{})
	}
	if _, ok := s.seen[i]; ok {
		return false
	}
	s.seen[i] = struct{}{}
	s.items = append(s.items, i)

	return true
}

func (s *indexSet) size() int {
	return len(s.items)
}
