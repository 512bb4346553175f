package hygiene

import "errors"

var ErrTestNotFound = errors.New("lab test not found")
