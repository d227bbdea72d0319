package fastmap

import (
	"github.com/xaionaro-go/fastmap/errors"
)

var (
	NotFound = errors.NotFound
)
