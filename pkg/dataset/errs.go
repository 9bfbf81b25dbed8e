package dataset

import "errors"

var (
	ErrNoHeader       = errors.New("csv has no header row")
	ErrUnsupported    = errors.New("unsupported dataset format")
	ErrInvalidRecords = errors.New("json dataset must be an array of objects")
)
