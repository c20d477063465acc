package database

import (
	"time"

	bolt "github.com/boltdb/bolt"
)

// OpenBolt opens (or creates) the embedded store used when STORE_DRIVER=bolt.
// Repositories create their own buckets.
func OpenBolt(path string) (*bolt.DB, error) {
	return bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
}
