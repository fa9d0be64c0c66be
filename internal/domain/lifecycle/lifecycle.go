// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx OnStart/OnStop hook.
const DefaultTimeout = 15 * time.Second
