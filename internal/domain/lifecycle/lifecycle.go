// Package lifecycle holds shared shutdown conventions.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-lived components.
const DefaultTimeout = 30 * time.Second
