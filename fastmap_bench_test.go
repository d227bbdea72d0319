package fastmap

import (
	"testing"

	"github.com/xaionaro-go/fastmap/hash"
	benchmark "github.com/xaionaro-go/fastmap/internal/benchmarkRoutines"
	"github.com/xaionaro-go/fastmap/internal/factoriesOfOtherImplementations/builtinMap"
	"github.com/xaionaro-go/fastmap/internal/factoriesOfOtherImplementations/builtinSyncMap"
	"github.com/xaionaro-go/fastmap/internal/factoriesOfOtherImplementations/cornelkHashmap"
)

// The key amounts stay well below the size hints: the probe sequence
// does not wrap, so overfilling a FastMap only measures the degraded
// tail scans.

func BenchmarkSet_fastMap_intKeyType_sizeHint1024_keyAmount512(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, fastMapFactory, hash.Sum, 1024, 512, "int")
}
func BenchmarkSet_fastMap_stringKeyType_sizeHint1024_keyAmount512(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, fastMapFactory, hash.Sum, 1024, 512, "string")
}
func BenchmarkSet_fastMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, fastMapFactory, hash.Sum, 65536, 32768, "int")
}
func BenchmarkSet_fastMap_stringKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, fastMapFactory, hash.Sum, 65536, 32768, "string")
}
func BenchmarkSet_fastMap_structKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, fastMapFactory, hash.Sum, 65536, 32768, "struct")
}
func BenchmarkSet_fastMapPassThrough_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, fastMapFactory, hash.PassThrough, 65536, 32768, "int")
}
func BenchmarkSet_locked_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, lockedFactory, hash.Sum, 65536, 32768, "int")
}
func BenchmarkSet_builtinMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, builtinMap.NewWithArgs, hash.Sum, 65536, 32768, "int")
}
func BenchmarkSet_cornelkHashmap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, cornelkHashmap.NewWithArgs, hash.Sum, 65536, 32768, "int")
}
func BenchmarkSet_builtinSyncMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfSet(b, builtinSyncMap.NewWithArgs, hash.Sum, 65536, 32768, "int")
}

func BenchmarkReSet_fastMap_intKeyType_sizeHint1024_keyAmount512(b *testing.B) {
	benchmark.DoBenchmarkOfReSet(b, fastMapFactory, hash.Sum, 1024, 512, "int")
}
func BenchmarkReSet_fastMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfReSet(b, fastMapFactory, hash.Sum, 65536, 32768, "int")
}
func BenchmarkReSet_builtinMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfReSet(b, builtinMap.NewWithArgs, hash.Sum, 65536, 32768, "int")
}

func BenchmarkGet_fastMap_intKeyType_sizeHint1024_keyAmount512(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, fastMapFactory, hash.Sum, 1024, 512, "int")
}
func BenchmarkGet_fastMap_stringKeyType_sizeHint1024_keyAmount512(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, fastMapFactory, hash.Sum, 1024, 512, "string")
}
func BenchmarkGet_fastMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, fastMapFactory, hash.Sum, 65536, 32768, "int")
}
func BenchmarkGet_fastMap_stringKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, fastMapFactory, hash.Sum, 65536, 32768, "string")
}
func BenchmarkGet_fastMap_structKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, fastMapFactory, hash.Sum, 65536, 32768, "struct")
}
func BenchmarkGet_fastMapPassThrough_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, fastMapFactory, hash.PassThrough, 65536, 32768, "int")
}
func BenchmarkGet_locked_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, lockedFactory, hash.Sum, 65536, 32768, "int")
}
func BenchmarkGet_builtinMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, builtinMap.NewWithArgs, hash.Sum, 65536, 32768, "int")
}
func BenchmarkGet_cornelkHashmap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, cornelkHashmap.NewWithArgs, hash.Sum, 65536, 32768, "int")
}
func BenchmarkGet_builtinSyncMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfGet(b, builtinSyncMap.NewWithArgs, hash.Sum, 65536, 32768, "int")
}

func BenchmarkGetMiss_fastMap_intKeyType_sizeHint1024(b *testing.B) {
	benchmark.DoBenchmarkOfGetMiss(b, fastMapFactory, hash.Sum, 1024, 512, "int")
}
func BenchmarkGetMiss_builtinMap_intKeyType_sizeHint1024(b *testing.B) {
	benchmark.DoBenchmarkOfGetMiss(b, builtinMap.NewWithArgs, hash.Sum, 1024, 512, "int")
}

func BenchmarkUnset_fastMap_intKeyType_sizeHint1024_keyAmount512(b *testing.B) {
	benchmark.DoBenchmarkOfUnset(b, fastMapFactory, hash.Sum, 1024, 512, "int")
}
func BenchmarkUnset_fastMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfUnset(b, fastMapFactory, hash.Sum, 65536, 32768, "int")
}
func BenchmarkUnset_builtinMap_intKeyType_sizeHint65536_keyAmount32768(b *testing.B) {
	benchmark.DoBenchmarkOfUnset(b, builtinMap.NewWithArgs, hash.Sum, 65536, 32768, "int")
}

func BenchmarkUnsetMiss_fastMap_intKeyType_sizeHint1024(b *testing.B) {
	benchmark.DoBenchmarkOfUnsetMiss(b, fastMapFactory, hash.Sum, 1024, 512, "int")
}
