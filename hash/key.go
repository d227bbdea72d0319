package hash

import (
	"fmt"

	I "github.com/xaionaro-go/fastmap/interfaces"
)

// IsEqualKey is the default KeyEqualFunc.
func IsEqualKey(keyA, keyB I.Key) bool {
	switch a := keyA.(type) {
	case bool:
		b, ok := keyB.(bool)
		return ok && a == b
	case string:
		b, ok := keyB.(string)
		return ok && a == b
	case []byte:
		b, ok := keyB.([]byte)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	case int:
		b, ok := keyB.(int)
		return ok && a == b
	case uint:
		b, ok := keyB.(uint)
		return ok && a == b
	case int8:
		b, ok := keyB.(int8)
		return ok && a == b
	case uint8:
		b, ok := keyB.(uint8)
		return ok && a == b
	case int16:
		b, ok := keyB.(int16)
		return ok && a == b
	case uint16:
		b, ok := keyB.(uint16)
		return ok && a == b
	case int32:
		b, ok := keyB.(int32)
		return ok && a == b
	case uint32:
		b, ok := keyB.(uint32)
		return ok && a == b
	case int64:
		b, ok := keyB.(int64)
		return ok && a == b
	case uint64:
		b, ok := keyB.(uint64)
		return ok && a == b
	case uintptr:
		b, ok := keyB.(uintptr)
		return ok && a == b
	case float32:
		b, ok := keyB.(float32)
		return ok && a == b
	case float64:
		b, ok := keyB.(float64)
		return ok && a == b
	default:
		return fmt.Sprintf("%v", keyA) == fmt.Sprintf("%v", keyB)
	}
}
