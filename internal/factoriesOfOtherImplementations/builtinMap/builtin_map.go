package builtinMap

import (
	"github.com/xaionaro-go/fastmap/errors"
	I "github.com/xaionaro-go/fastmap/interfaces"
)

// NewWithArgs returns the builtin-map baseline used by the comparison
// benchmarks. The hash function argument is accepted for signature
// compatibility and ignored: the builtin map hashes on its own.
func NewWithArgs(sizeHint uint64, keyHashFunc I.KeyHashFunc) I.Map {
	return &builtinMap{
		m: make(map[I.Key]interface{}, sizeHint),
	}
}

type builtinMap struct {
	m map[I.Key]interface{}
}

func (m *builtinMap) Set(key I.Key, value interface{}) error {
	m.m[key] = value
	return nil
}

func (m *builtinMap) Get(key I.Key) (interface{}, error) {
	value, ok := m.m[key]
	if !ok {
		return nil, errors.NotFound
	}
	return value, nil
}

func (m *builtinMap) Unset(key I.Key) error {
	_, ok := m.m[key]
	if !ok {
		return errors.NotFound
	}
	delete(m.m, key)
	return nil
}

func (m *builtinMap) Len() int {
	return len(m.m)
}

func (m *builtinMap) ToSTDMap() map[I.Key]interface{} {
	return m.m
}

func (m *builtinMap) FromSTDMap(in map[I.Key]interface{}) {
	m.m = in
}
