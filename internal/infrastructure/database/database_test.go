package database

import (
	"context"
	"path/filepath"
	"testing"

	"gift_contribution/internal/infrastructure/config"

	bolt "github.com/boltdb/bolt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBolt(t *testing.T) {
	db, err := OpenBolt(filepath.Join(t.TempDir(), "gifts.db"))
	require.NoError(t, err)
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte("probe"))
		return err
	})
	assert.NoError(t, err)
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.StoreConfig{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
