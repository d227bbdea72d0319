package hash

import (
	"fmt"
	"math"

	"github.com/OneOfOne/xxhash"

	I "github.com/xaionaro-go/fastmap/interfaces"
)

const (
	knuthsMultiplicative8  = 179
	knuthsMultiplicative16 = 47351
	knuthsMultiplicative32 = 0x45d9f3b
)

func preHashString(in string) uint64 {
	if len(in) <= 8 {
		v := uint64(0)
		for i, c := range in {
			v += uint64(c) << (uint(i) << 3)
		}
		return v
	}
	return xxhash.ChecksumString64(in)
}

func preHashBytes(in []byte) uint64 {
	if len(in) <= 8 {
		v := uint64(0)
		for i, c := range in {
			v += uint64(c) << (uint(i) << 3)
		}
		return v
	}
	return xxhash.Checksum64(in)
}

// preHash converts a key to a uint64. Integer-like keys are passed
// through as-is, so keys that are already well-distributed small
// integers keep their value (and their locality).
func preHash(keyI I.Key) (value uint64, isPassedThrough bool) {
	switch key := keyI.(type) {
	case string:
		return preHashString(key), false
	case []byte:
		return preHashBytes(key), false
	case int:
		return uint64(key), true
	case uint:
		return uint64(key), true
	case int8:
		return uint64(key), true
	case uint8:
		return uint64(key), true
	case int16:
		return uint64(key), true
	case uint16:
		return uint64(key), true
	case int32:
		return uint64(key), true
	case uint32:
		return uint64(key), true
	case int64:
		return uint64(key), true
	case uint64:
		return key, true
	case uintptr:
		return uint64(key), true
	case float32:
		return uint64(math.Float32bits(key)), false
	case float64:
		return uint64(math.Float64bits(key)), false
	default:
		return preHashString(fmt.Sprintf("%v", key)), false
	}
}

// Uint64Hash spreads an arbitrary uint64 over [0, sizeHint) using
// Knuth's multiplicative method (staged to not waste work on small
// sizeHint values).
func Uint64Hash(sizeHint uint64, key uint64) uint64 {
	subHash1 := uint32((key >> 32) ^ (key & 0xffffffff) ^ knuthsMultiplicative32)
	hash := uint64(subHash1 * knuthsMultiplicative32)
	if sizeHint > (2 << 31) {
		return hash % sizeHint
	}
	subHash2 := uint16((subHash1 >> 16) ^ (subHash1 & 0xffff) ^ knuthsMultiplicative16)
	hash ^= uint64(subHash2 * knuthsMultiplicative16)
	if sizeHint > (2 << 15) {
		return hash % sizeHint
	}
	subHash3 := uint8((subHash2 >> 8) ^ (subHash2 & 0xff) ^ knuthsMultiplicative8)
	hash ^= uint64(subHash3 * knuthsMultiplicative8)
	subHash4 := uint8((subHash3 >> 4) ^ (subHash3 & 0xf) ^ knuthsMultiplicative8)
	hash ^= uint64(subHash4 * knuthsMultiplicative8)
	return hash % sizeHint
}

// Sum is the default KeyHashFunc: a pre-hash that is already below
// sizeHint is used as the offset directly, everything else is spread
// with Uint64Hash.
func Sum(sizeHint uint64, key I.Key) uint64 {
	preHashed, _ := preHash(key)
	if preHashed < sizeHint {
		return preHashed
	}
	return Uint64Hash(sizeHint, preHashed)
}

// PassThrough is the KeyHashFunc for keys that are already valid
// hashes (for example node indexes of a tree): the key value reduced
// modulo sizeHint. Keys that are not integer-like fall back to Sum.
func PassThrough(sizeHint uint64, key I.Key) uint64 {
	preHashed, isPassedThrough := preHash(key)
	if !isPassedThrough {
		return Sum(sizeHint, key)
	}
	return preHashed % sizeHint
}
