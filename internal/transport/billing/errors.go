package billing

import "errors"

var (
	ErrNoEvents = errors.New("no paid events")
)
