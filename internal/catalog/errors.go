package catalog

import "errors"

var ErrNotFound = errors.New("job profile not found")
