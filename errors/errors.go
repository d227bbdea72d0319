package errors

import (
	"fmt"
)

var (
	NotFound = fmt.Errorf("not found")
)
