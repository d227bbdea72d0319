package fastmap

import (
	"sync"
	"testing"
)

func TestLocked(t *testing.T) {
	m := NewLockedWithSizeHint(16)
	if m.SizeHint() != 16 {
		t.Errorf("m.SizeHint() is not 16: %v", m.SizeHint())
	}

	m.Set(3, "a")
	value, err := m.Get(3)
	if err != nil || value != "a" {
		t.Errorf("Got: %v, %v", value, err)
	}
	if m.Count(3) != 1 {
		t.Errorf("m.Count(3) is not 1")
	}
	if m.Len() != 1 || m.IsEmpty() {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}

	if r := m.Erase(3); r != 1 {
		t.Errorf("m.Erase(3) is not 1: %v", r)
	}
	if err := m.Unset(3); err != NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	m.FromSTDMap(map[Key]interface{}{1: "x", 2: "y"})
	if len(m.ToSTDMap()) != 2 || len(m.Keys()) != 2 {
		t.Errorf("a wrong amount of entries")
	}

	m.Clear()
	if !m.IsEmpty() {
		t.Errorf("the map is not empty after Clear")
	}
}

func TestLocked_concurrent(t *testing.T) {
	m := NewLockedWithSizeHint(1024)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := (g*1000 + i) % 256
				m.Set(key, i)
				m.Get(key)
				m.Count(key)
				if i%3 == 0 {
					m.Erase(key)
				}
			}
		}(g)
	}
	wg.Wait()

	if err := m.CheckConsistency(); err != nil {
		t.Error(err)
	}
	if m.Len() > 256 {
		t.Errorf("m.Len() is too big: %v", m.Len())
	}
}
