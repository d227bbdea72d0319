package benchmarkRoutines

import (
	"encoding/binary"
	"math/rand"

	I "github.com/xaionaro-go/fastmap/interfaces"
)

type mapFactoryFunc func(sizeHint uint64, keyHashFunc I.KeyHashFunc) I.Map

type keyStruct struct {
	Key uint32
}

func generateKeys(keyAmount uint64, keyType string) []interface{} {
	resultMap := map[string]bool{}
	for uint64(len(resultMap)) < keyAmount {
		newKey := make([]byte, 4)
		rand.Read(newKey)
		resultMap[string(newKey)] = true
	}

	i := 0
	result := make([]interface{}, keyAmount)
	for newKey := range resultMap {
		newKeyInt := binary.LittleEndian.Uint32([]byte(newKey))
		switch keyType {
		case "int":
			result[i] = newKeyInt
		case "string":
			result[i] = newKey
		case "struct":
			result[i] = keyStruct{Key: newKeyInt}
		default:
			panic("Unknown key type: " + keyType)
		}
		i++
	}
	return result
}
