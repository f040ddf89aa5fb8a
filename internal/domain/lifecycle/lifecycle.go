// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook (DB ping, HTTP shutdown)
// may take before it is abandoned.
const DefaultTimeout = 15 * time.Second
