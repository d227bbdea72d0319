package fastmap

import (
	"github.com/xaionaro-go/spinlock"
)

// Locked wraps a FastMap with the single exclusive lock required for
// concurrent use: the map itself performs no I/O and cannot block, so
// one lock held for the duration of each call is sufficient.
//
// The reference-returning operations (Index, Find, Iterate) are not
// exposed here: a pointer or cursor escaping the lock would be stale
// the moment another goroutine mutates the map.
type Locked struct {
	locker spinlock.Locker
	m      *FastMap
}

func NewLocked() *Locked {
	return &Locked{m: New()}
}

func NewLockedWithSizeHint(sizeHint uint64) *Locked {
	return &Locked{m: NewWithSizeHint(sizeHint)}
}

func NewLockedWithArgs(sizeHint uint64, keyHashFunc KeyHashFunc, keyEqualFunc KeyEqualFunc) *Locked {
	return &Locked{m: NewWithArgs(sizeHint, keyHashFunc, keyEqualFunc)}
}

func (l *Locked) Set(key Key, value interface{}) error {
	l.locker.Lock()
	err := l.m.Set(key, value)
	l.locker.Unlock()
	return err
}

func (l *Locked) Get(key Key) (interface{}, error) {
	l.locker.Lock()
	value, err := l.m.Get(key)
	l.locker.Unlock()
	return value, err
}

func (l *Locked) Count(key Key) uint64 {
	l.locker.Lock()
	r := l.m.Count(key)
	l.locker.Unlock()
	return r
}

func (l *Locked) Erase(key Key) uint64 {
	l.locker.Lock()
	r := l.m.Erase(key)
	l.locker.Unlock()
	return r
}

func (l *Locked) Unset(key Key) error {
	l.locker.Lock()
	err := l.m.Unset(key)
	l.locker.Unlock()
	return err
}

func (l *Locked) Clear() {
	l.locker.Lock()
	l.m.Clear()
	l.locker.Unlock()
}

func (l *Locked) Len() int {
	l.locker.Lock()
	r := l.m.Len()
	l.locker.Unlock()
	return r
}

func (l *Locked) IsEmpty() bool {
	l.locker.Lock()
	r := l.m.IsEmpty()
	l.locker.Unlock()
	return r
}

func (l *Locked) SizeHint() uint64 {
	return l.m.SizeHint()
}

func (l *Locked) Keys() []interface{} {
	l.locker.Lock()
	r := l.m.Keys()
	l.locker.Unlock()
	return r
}

func (l *Locked) ToSTDMap() map[Key]interface{} {
	l.locker.Lock()
	r := l.m.ToSTDMap()
	l.locker.Unlock()
	return r
}

func (l *Locked) FromSTDMap(stdMap map[Key]interface{}) {
	l.locker.Lock()
	l.m.FromSTDMap(stdMap)
	l.locker.Unlock()
}

func (l *Locked) CheckConsistency() error {
	l.locker.Lock()
	err := l.m.CheckConsistency()
	l.locker.Unlock()
	return err
}
