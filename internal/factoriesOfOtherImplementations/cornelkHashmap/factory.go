package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	"github.com/xaionaro-go/fastmap/errors"
	I "github.com/xaionaro-go/fastmap/interfaces"
)

// NewWithArgs returns the cornelk/hashmap baseline used by the
// comparison benchmarks. Both arguments are accepted for signature
// compatibility only.
func NewWithArgs(sizeHint uint64, keyHashFunc I.KeyHashFunc) I.Map {
	return &hashmapWrapper{}
}

type hashmapWrapper struct {
	hashmap.HashMap
}

func (m *hashmapWrapper) Set(key I.Key, value interface{}) error {
	m.HashMap.Set(key, value)
	return nil
}

func (m *hashmapWrapper) Get(key I.Key) (interface{}, error) {
	v, ok := m.HashMap.Get(key)
	if !ok {
		return nil, errors.NotFound
	}
	return v, nil
}

func (m *hashmapWrapper) Unset(key I.Key) error {
	m.HashMap.Del(key)
	return nil
}

func (m *hashmapWrapper) Len() int {
	return -1 // unsupported by the comparison routines on purpose
}

func (m *hashmapWrapper) ToSTDMap() map[I.Key]interface{} {
	return nil
}

func (m *hashmapWrapper) FromSTDMap(map[I.Key]interface{}) {
}
