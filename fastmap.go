package fastmap

import (
	"fmt"
	"log"

	"github.com/xaionaro-go/fastmap/hash"
	I "github.com/xaionaro-go/fastmap/interfaces"
)

const (
	defaultSizeHint = 2048
)

type Key = I.Key
type KeyHashFunc = I.KeyHashFunc
type KeyEqualFunc = I.KeyEqualFunc

// FastMap is a hash table with open addressing and linear probing,
// aimed at keys that map cheaply and near-uniformly onto a small
// integer range (for example node indexes of a tree). It trades
// generality for speed: the size hint set at construction is the
// modulus of every offset computation and is never changed by a
// rehash, the probe sequence never wraps around the end of the
// storage, and the storage grows by appending slots instead of
// reallocating into a bigger bucket count.
//
// A FastMap is not safe for concurrent use; see Locked.
type FastMap struct {
	storage      []mapSlot
	sizeHint     uint64
	busySlots    int
	keyHashFunc  KeyHashFunc
	keyEqualFunc KeyEqualFunc
}

func fixSizeHint(sizeHint uint64) uint64 {
	if sizeHint == 0 {
		log.Printf("Invalid size hint: %v. Setting to %d\n", sizeHint, defaultSizeHint)
		sizeHint = defaultSizeHint
	}
	return sizeHint
}

func New() *FastMap {
	return NewWithArgs(defaultSizeHint, nil, nil)
}

func NewWithSizeHint(sizeHint uint64) *FastMap {
	return NewWithArgs(sizeHint, nil, nil)
}

// NewWithArgs creates a map that places keys at offset
// keyHashFunc(sizeHint, key). sizeHint is a placement hint, not a
// capacity: the storage grows past it when probe chains run long. A
// nil keyHashFunc falls back to hash.Sum, a nil keyEqualFunc to
// hash.IsEqualKey; pick hash.PassThrough for keys that already are
// well-distributed small integers.
func NewWithArgs(sizeHint uint64, keyHashFunc KeyHashFunc, keyEqualFunc KeyEqualFunc) *FastMap {
	sizeHint = fixSizeHint(sizeHint)
	if keyHashFunc == nil {
		keyHashFunc = hash.Sum
	}
	if keyEqualFunc == nil {
		keyEqualFunc = hash.IsEqualKey
	}
	return &FastMap{
		storage:      make([]mapSlot, 0, sizeHint),
		sizeHint:     sizeHint,
		keyHashFunc:  keyHashFunc,
		keyEqualFunc: keyEqualFunc,
	}
}

func (m *FastMap) offset(key Key) uint64 {
	return m.keyHashFunc(m.sizeHint, key)
}

// Index returns a pointer to the value stored under key, inserting a
// slot with a nil value first if the key is not present yet. There is
// at most one set slot per key at any time.
//
// The returned pointer stays valid only until the next structural
// mutation of the map (an insert that grows the storage, Erase,
// Clear): growth may reallocate the whole backing storage.
func (m *FastMap) Index(key Key) *interface{} {
	offset := m.offset(key)
	if offset >= m.size() {
		m.growToOffset(offset)
		slot := &m.storage[offset]
		slot.key = key
		slot.isSet = true
		m.busySlots++
		return &slot.value
	}

	// Find the slot holding the given key. If the key is not there
	// yet, the first unset slot at or after the target offset is the
	// insertion candidate.
	candidate := -1
	for i := int(offset); i < len(m.storage); i++ {
		slot := &m.storage[i]
		if slot.isSet {
			if m.keyEqualFunc(key, slot.key) {
				return &slot.value
			}
		} else if candidate < 0 {
			candidate = i
		}
	}

	if candidate < 0 {
		candidate = m.appendSlot()
	}

	slot := &m.storage[candidate]
	slot.key = key
	slot.isSet = true
	m.busySlots++
	return &slot.value
}

func (m *FastMap) Set(key Key, value interface{}) error {
	*m.Index(key) = value
	return nil
}

// Get is the strict lookup: a missing key is reported with
// errors.NotFound instead of being inserted.
func (m *FastMap) Get(key Key) (interface{}, error) {
	it := m.Find(key)
	if !it.Valid() {
		return nil, NotFound
	}
	return it.Value(), nil
}

// Find returns an iterator positioned at the entry holding key, or
// one with Valid() == false if there is no such entry. The scan runs
// from the key's offset to the end of the storage and does not stop
// at unset slots.
func (m *FastMap) Find(key Key) *Iterator {
	offset := m.offset(key)
	for i := int(offset); i < len(m.storage); i++ {
		slot := &m.storage[i]
		if slot.isSet && m.keyEqualFunc(key, slot.key) {
			return &Iterator{m: m, pos: i}
		}
	}
	return &Iterator{m: m, pos: len(m.storage)}
}

// Count returns 1 if key is present and 0 otherwise. Unlike Find the
// scan gives up at the first unset slot: insertion never leaves a
// hole before a reachable entry of the same offset group, so a key
// that was not matched by then was never placed.
func (m *FastMap) Count(key Key) uint64 {
	offset := m.offset(key)
	for i := int(offset); i < len(m.storage); i++ {
		slot := &m.storage[i]
		if !slot.isSet {
			return 0
		}
		if m.keyEqualFunc(key, slot.key) {
			return 1
		}
	}
	return 0
}

// Erase removes the entry stored under key and returns 1, or returns
// 0 if there is no such entry.
//
// After unsetting the slot, the run right behind it is compacted:
// entries are swapped one position backward while they are set and
// their own offset still exceeds their index. The pass stops at the
// first slot that is unset or already as far forward as its offset
// allows, so every surviving entry stays reachable by a forward scan
// from its own offset. Like probing, the compaction never wraps
// around the end of the storage.
func (m *FastMap) Erase(key Key) uint64 {
	offset := m.offset(key)
	loc := -1
	for i := int(offset); i < len(m.storage); i++ {
		slot := &m.storage[i]
		if !slot.isSet {
			return 0
		}
		if m.keyEqualFunc(key, slot.key) {
			loc = i
			break
		}
	}
	if loc < 0 {
		return 0
	}

	slot := &m.storage[loc]
	slot.isSet = false
	slot.key = nil
	slot.value = nil
	m.busySlots--

	for i := loc + 1; i < len(m.storage); i++ {
		if m.storage[i].isSet && m.offset(m.storage[i].key) > uint64(i) {
			m.storage[i-1], m.storage[i] = m.storage[i], m.storage[i-1]
		} else {
			break
		}
	}
	return 1
}

// Unset is the errors.NotFound-returning flavor of Erase.
func (m *FastMap) Unset(key Key) error {
	if m.Erase(key) == 0 {
		return NotFound
	}
	return nil
}

// Clear empties the map. The backing storage stays allocated; the
// behavior afterwards is the one of a freshly constructed map with
// the same size hint.
func (m *FastMap) Clear() {
	for i := range m.storage {
		m.storage[i] = mapSlot{}
	}
	m.storage = m.storage[:0]
	m.busySlots = 0
}

func (m *FastMap) Len() int {
	return m.busySlots
}

func (m *FastMap) IsEmpty() bool {
	return m.busySlots == 0
}

func (m *FastMap) SizeHint() uint64 {
	return m.sizeHint
}

// Hash returns the offset the map computes for key.
func (m *FastMap) Hash(key Key) uint64 {
	return m.offset(key)
}

// Keys returns all keys in storage order. Storage order correlates
// with, but is not identical to, ascending offset order: after an
// erase compaction a later insertion may sit at an earlier index.
func (m *FastMap) Keys() []interface{} {
	r := make([]interface{}, 0, m.busySlots)
	for i := range m.storage {
		if m.storage[i].isSet {
			r = append(r, m.storage[i].key)
		}
	}
	return r
}

// ToSTDMap converts to a standard map[Key]interface{}. The keys have
// to be of a type the builtin map can hash.
func (m *FastMap) ToSTDMap() map[Key]interface{} {
	r := make(map[Key]interface{}, m.busySlots)
	for i := range m.storage {
		if m.storage[i].isSet {
			r[m.storage[i].key] = m.storage[i].value
		}
	}
	return r
}

func (m *FastMap) FromSTDMap(stdMap map[Key]interface{}) {
	for k, v := range stdMap {
		*m.Index(k) = v
	}
}

// CheckConsistency verifies that the busy-slots counter matches the
// storage and that every stored entry is still reachable through Get.
func (m *FastMap) CheckConsistency() error {
	count := 0
	for i := range m.storage {
		if m.storage[i].isSet {
			count++
		}
	}
	if count != m.Len() {
		return fmt.Errorf("count != m.Len(): %v %v", count, m.Len())
	}

	for i := range m.storage {
		slot := &m.storage[i]
		if !slot.isSet {
			continue
		}
		foundValue, err := m.Get(slot.key)
		if foundValue != slot.value || err != nil {
			return fmt.Errorf("m.Get(slot.key) != slot.value: %v(%v) %v; i:%v key:%v expectedOffset:%v",
				foundValue, err, slot.value, i, slot.key, m.offset(slot.key))
		}
	}
	return nil
}
