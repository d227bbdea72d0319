package benchmarkRoutines

import (
	"testing"

	"github.com/xaionaro-go/fastmap/errors"
	I "github.com/xaionaro-go/fastmap/interfaces"
)

const (
	testSizeHint  = 4096
	testKeyAmount = 1500 // keep the fill ratio sane: probing does not wrap
)

type checkConsistencier interface {
	CheckConsistency() error
}

func expect(t *testing.T, m I.Map, key I.Key, expectedValue int) {
	value, err := m.Get(key)
	if err != nil {
		t.Errorf("Got an unexpected error: %v. key == %v; expectedValue == %v", err, key, expectedValue)
		return
	}
	if value != expectedValue {
		t.Errorf(`A wrong value "%v" (instead of %v)`, value, expectedValue)
	}
}

func expectNotFound(t *testing.T, m I.Map, key I.Key) {
	_, err := m.Get(key)
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v (key == %v)`, err, key)
	}
}

func checkConsistency(t *testing.T, m I.Map) {
	c, ok := m.(checkConsistencier)
	if !ok {
		return
	}
	if err := c.CheckConsistency(); err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
}

func DoTest(t *testing.T, factoryFunc mapFactoryFunc, hashFunc I.KeyHashFunc) {
	m := factoryFunc(testSizeHint, hashFunc)

	if m.Len() != 0 && m.Len() != -1 { // "-1" means "unsupported"
		t.Errorf("m.Len() is not 0: %v", m.Len())
	}

	m.Set(1024*1024, 1)
	m.Set("a string", 2)

	expect(t, m, 1024*1024, 1)
	expect(t, m, "a string", 2)
	expectNotFound(t, m, 3)

	if m.Len() != 2 && m.Len() != -1 {
		t.Errorf("m.Len() is not 2: %v", m.Len())
	}

	err := m.Unset(1024 * 1024)
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
	expectNotFound(t, m, 1024*1024)

	if m.Len() != 1 && m.Len() != -1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}

	for i := 10; i < testKeyAmount; i++ {
		m.Set(i*6000, i)
	}
	err = m.Unset(60000)
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
	expectNotFound(t, m, 60000)
	checkConsistency(t, m)

	m.Set(60000, 10) // goes back into the slot freed right above

	for i := 10; i < testKeyAmount; i++ {
		r, err := m.Get(i * 6000)
		if err != nil {
			t.Errorf("%v not found", i*6000)
			continue
		}
		if r.(int) != i {
			t.Errorf("%v != %v", r, i)
		}
	}
	checkConsistency(t, m)

	// The sweep runs in reverse insertion order: an unset leaves a
	// hole and the erase scan stops at the first hole, so a forward
	// sweep would cut collision chains before their tails are removed.
	for i := testKeyAmount - 1; i >= 10; i-- {
		err := m.Unset(i * 6000)
		if err != nil {
			t.Errorf("Cannot unset %v: %v", i*6000, err)
			continue
		}
	}
	checkConsistency(t, m)

	if m.Len() != 1 && m.Len() != -1 { // only "a string" is left
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}
}
