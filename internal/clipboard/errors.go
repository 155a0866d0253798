package clipboard

import "errors"

// ErrWriteFailed is returned by Copy when the secret could not be placed
// on the system clipboard. Wipe-side failures are never surfaced; they
// are logged and degrade to best-effort.
var ErrWriteFailed = errors.New("clipboard write failed")
