package settings

import "errors"

var (
	ErrStoreUnavailable = errors.New("settings.store: key-value store unavailable")
	ErrDecodeValue      = errors.New("settings.store: failed to decode stored value")
	ErrEncodeValue      = errors.New("settings.store: failed to encode value")
)
