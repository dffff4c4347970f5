package leadrank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		assert.NotNil(t, db.RecordRepository())
		assert.NotNil(t, db.Embedder())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("in-memory database", func(t *testing.T) {
		db, err := NewDatabase("", WithInMemory())
		require.NoError(t, err)
		defer db.Close()

		assert.NotNil(t, db.RecordRepository())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0644))

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, db.Close())
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db, err := NewDatabase(t.TempDir(), WithGuardedEmbedder())
	require.NoError(t, err)
	defer db.Close()

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := db.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})

	t.Run("can create lead service", func(t *testing.T) {
		service, err := db.NewLeadService(nil)
		require.NoError(t, err)
		require.NotNil(t, service)
	})

	t.Run("can create ingest pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
	})
}
