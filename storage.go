package fastmap

// mapSlot is a single storage cell: a key/value pair plus the
// validity flag. isSet == false means the cell is either
// never-initialized or erased; either way it is immediately reusable
// by an insert (there is no separate tombstone state).
type mapSlot struct {
	isSet bool
	key   Key
	value interface{}
}

func (m *FastMap) size() uint64 {
	return uint64(len(m.storage))
}

// growToOffset appends empty slots until the storage covers offset.
// The storage only ever grows (possibly past the size hint, when an
// offset lands beyond the current length or probe chains run long);
// the only way to shrink it is Clear.
func (m *FastMap) growToOffset(offset uint64) {
	for m.size() <= offset {
		m.storage = append(m.storage, mapSlot{})
	}
}

func (m *FastMap) appendSlot() int {
	m.storage = append(m.storage, mapSlot{})
	return len(m.storage) - 1
}
