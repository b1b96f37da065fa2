// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL is the default time-to-live for cached availability results.
const AvailabilityCacheTTL = 2 * time.Minute
