package redis

import (
	"fmt"

	"github.com/mcoot/kohlenschlagen/internal/storage"
)

// stateKey returns the Redis key for the session document
func stateKey(prefix string) string {
	if prefix == "" {
		return storage.StateKey
	}
	return fmt.Sprintf("%s:%s", prefix, storage.StateKey)
}
