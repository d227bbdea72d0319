package fastmap

// Iterator is a forward cursor over the set slots of a FastMap, in
// storage order:
//
//	for it := m.Iterate(); it.Next(); {
//		doSomething(it.Key(), it.Value())
//	}
//
// An Iterator borrows the storage of the map it came from: any
// structural mutation of the map (an insert that grows the storage,
// Erase, Clear) invalidates every outstanding iterator. Iterating
// while mutating is not detected, it is on the caller.
type Iterator struct {
	m   *FastMap
	pos int
}

// Iterate returns a cursor positioned before the first entry.
func (m *FastMap) Iterate() *Iterator {
	return &Iterator{m: m, pos: -1}
}

// Next advances to the next set slot, skipping unset ones, and
// reports whether there is one.
func (it *Iterator) Next() bool {
	for it.pos+1 < len(it.m.storage) {
		it.pos++
		if it.m.storage[it.pos].isSet {
			return true
		}
	}
	it.pos = len(it.m.storage)
	return false
}

// Valid reports whether the cursor currently points at an entry.
func (it *Iterator) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.m.storage) && it.m.storage[it.pos].isSet
}

func (it *Iterator) Key() Key {
	return it.m.storage[it.pos].key
}

func (it *Iterator) Value() interface{} {
	return it.m.storage[it.pos].value
}

// SetValue overwrites the value of the current entry in place; the
// new value is visible to any subsequent lookup of the same key.
func (it *Iterator) SetValue(value interface{}) {
	it.m.storage[it.pos].value = value
}
