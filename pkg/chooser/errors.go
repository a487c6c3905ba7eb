package chooser

import "github.com/pkg/errors"

// ErrStorageUnavailable is returned when a dialog is built while the storage
// is neither mounted nor mounted read-only.
var ErrStorageUnavailable = errors.New("external storage is not available")
