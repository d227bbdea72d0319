package builtinSyncMap

import (
	"sync"

	"github.com/xaionaro-go/fastmap/errors"
	I "github.com/xaionaro-go/fastmap/interfaces"
)

// NewWithArgs returns the sync.Map baseline used by the comparison
// benchmarks (against the Locked wrapper). Both arguments are
// accepted for signature compatibility only.
func NewWithArgs(sizeHint uint64, keyHashFunc I.KeyHashFunc) I.Map {
	return &builtinSyncMap{}
}

type builtinSyncMap struct {
	sync.Map
}

func (m *builtinSyncMap) Set(key I.Key, value interface{}) error {
	m.Map.Store(key, value)
	return nil
}

func (m *builtinSyncMap) Get(key I.Key) (interface{}, error) {
	value, ok := m.Map.Load(key)
	if !ok {
		return value, errors.NotFound
	}
	return value, nil
}

func (m *builtinSyncMap) Unset(key I.Key) error {
	m.Map.Delete(key)
	return nil
}

func (m *builtinSyncMap) Len() int {
	return -1 // unsupported by the comparison routines on purpose
}

func (m *builtinSyncMap) ToSTDMap() map[I.Key]interface{} {
	return nil
}

func (m *builtinSyncMap) FromSTDMap(map[I.Key]interface{}) {
}
