package foxenv

// table is an ordered store with a name index.
// Storage starts at a fixed capacity and doubles when full.
type table[T any] struct {
	items []T
	index map[string]int
	key   func(T) string
}

func newTable[T any](capacity int, key func(T) string) *table[T] {
	return &table[T]{
		items: make([]T, 0, capacity),
		index: make(map[string]int, capacity),
		key:   key,
	}
}

func (t *table[T]) get(name string) (ret T, ok bool) {
	i, ok := t.index[name]
	if !ok {
		return
	}
	return t.items[i], true
}

func (t *table[T]) insert(item T) bool {
	name := t.key(item)
	if _, ok := t.index[name]; ok {
		return false
	}
	if len(t.items) == cap(t.items) {
		t.grow()
	}
	t.items = append(t.items, item)
	t.index[name] = len(t.items) - 1
	return true
}

// grow copies into the doubled array before replacing items.
func (t *table[T]) grow() {
	newCap := cap(t.items) * 2
	if newCap == 0 {
		newCap = 1
	}
	items := make([]T, len(t.items), newCap)
	copy(items, t.items)
	t.items = items
}

func (t *table[T]) update(name string, fn func(*T)) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	fn(&t.items[i])
	return true
}

func (t *table[T]) remove(name string) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	copy(t.items[i:], t.items[i+1:])
	var zero T
	t.items[len(t.items)-1] = zero
	t.items = t.items[:len(t.items)-1]
	delete(t.index, name)
	for j := i; j < len(t.items); j++ {
		t.index[t.key(t.items[j])] = j
	}
	return true
}

func (t *table[T]) each(fn func(T)) {
	for _, item := range t.items {
		fn(item)
	}
}

func (t *table[T]) len() int {
	return len(t.items)
}

func (t *table[T]) capacity() int {
	return cap(t.items)
}
