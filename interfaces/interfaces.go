package interfaces

type Key interface{}

// KeyHashFunc converts a key to its preferred offset. The returned value
// is already reduced modulo sizeHint.
type KeyHashFunc func(sizeHint uint64, key Key) uint64

// KeyEqualFunc reports if two keys are the same key.
type KeyEqualFunc func(keyA, keyB Key) bool

type Map interface {
	Set(key Key, value interface{}) error
	Get(key Key) (value interface{}, err error)
	Unset(key Key) error
	Len() int
	ToSTDMap() map[Key]interface{}
	FromSTDMap(map[Key]interface{})
}
