package rates

import "errors"

var (
	ErrInvalidRate = errors.New("rate must be at least 0 and below 1")
)
