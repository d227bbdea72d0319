package benchmarkRoutines

import (
	"testing"

	I "github.com/xaionaro-go/fastmap/interfaces"
)

func DoBenchmarkOfSet(b *testing.B, factoryFunc mapFactoryFunc, hashFunc I.KeyHashFunc, sizeHint uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(sizeHint, hashFunc)
	keys := generateKeys(keyAmount, keyType)

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= keyAmount {
			b.StopTimer()
			m = factoryFunc(sizeHint, hashFunc)
			currentIdx = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfReSet(b *testing.B, factoryFunc mapFactoryFunc, hashFunc I.KeyHashFunc, sizeHint uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(sizeHint, hashFunc)
	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], i+1)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet(b *testing.B, factoryFunc mapFactoryFunc, hashFunc I.KeyHashFunc, sizeHint uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(sizeHint, hashFunc)
	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], i)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGetMiss(b *testing.B, factoryFunc mapFactoryFunc, hashFunc I.KeyHashFunc, sizeHint uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(sizeHint, hashFunc)
	keys := generateKeys(uint64(b.N), keyType)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[i])
	}
	b.StopTimer()
}

func DoBenchmarkOfUnset(b *testing.B, factoryFunc mapFactoryFunc, hashFunc I.KeyHashFunc, sizeHint uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(sizeHint, hashFunc)
	keys := generateKeys(keyAmount, keyType)

	currentIdx := uint64(0)
	for i := 0; i < b.N; i++ {
		if currentIdx == 0 {
			b.StopTimer()
			for j := uint64(0); j < keyAmount; j++ {
				m.Set(keys[j], j)
			}
			b.StartTimer()
		}

		m.Unset(keys[currentIdx])

		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfUnsetMiss(b *testing.B, factoryFunc mapFactoryFunc, hashFunc I.KeyHashFunc, sizeHint uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(sizeHint, hashFunc)
	keys := generateKeys(uint64(b.N), keyType)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Unset(keys[i])
	}
	b.StopTimer()
}
