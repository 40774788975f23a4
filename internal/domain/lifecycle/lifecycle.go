// Package lifecycle holds the shared timeout used by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each OnStart/OnStop hook that talks to a backend.
const DefaultTimeout = 10 * time.Second
