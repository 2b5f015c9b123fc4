package config

import (
	"os"
	"strings"
	"time"
)

// StrictValidation gates document generation on a fully valid value set.
// When off, validation failures are reported but generation proceeds.
// Draft saving is never gated either way.
//
// Set via env:
// - STRICT_VALIDATION=true
func StrictValidation() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("STRICT_VALIDATION")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// DatasetCacheTTL controls how long the Redis snapshot of the shipment
// dataset stays fresh before the next request reloads it from MySQL.
//
// Set via env:
// - DATASET_CACHE_TTL_SECONDS (default 300)
func DatasetCacheTTL() time.Duration {
	return time.Duration(IntFromEnv("DATASET_CACHE_TTL_SECONDS", 300)) * time.Second
}
