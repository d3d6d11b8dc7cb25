// Package lifecycle holds shared shutdown policy for long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and workers.
const DefaultTimeout = 10 * time.Second
