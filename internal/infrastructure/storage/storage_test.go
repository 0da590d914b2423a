package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eesaa/retail-suite/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// MemoryKV
// ──────────────────────────────────────────────────────────────────────────────

func TestMemoryKV_RoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()

	_, ok, err := kv.Load("eesaa_products")
	require.NoError(t, err)
	assert.False(t, ok, "a key that was never saved reads as absent")

	require.NoError(t, kv.Save("eesaa_products", []byte(`[{"id":"P1"}]`)))

	data, ok, err := kv.Load("eesaa_products")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"P1"}]`, string(data))
}

func TestMemoryKV_SaveOverwrites(t *testing.T) {
	kv := storage.NewMemoryKV()

	require.NoError(t, kv.Save("k", []byte("one")))
	require.NoError(t, kv.Save("k", []byte("two")))

	data, ok, err := kv.Load("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", string(data))
}

func TestMemoryKV_LoadReturnsCopy(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Save("k", []byte("abc")))

	data, _, err := kv.Load("k")
	require.NoError(t, err)
	data[0] = 'X'

	fresh, _, err := kv.Load("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(fresh), "callers must not mutate stored bytes")
}

// ──────────────────────────────────────────────────────────────────────────────
// SQLiteKV
// ──────────────────────────────────────────────────────────────────────────────

func openTempSQLite(t *testing.T) *storage.SQLiteKV {
	t.Helper()
	kv, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	kv := openTempSQLite(t)

	_, ok, err := kv.Load("eesaa_invoices")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Save("eesaa_invoices", []byte(`[]`)))
	require.NoError(t, kv.Save("eesaa_invoices", []byte(`[{"id":"x"}]`)))

	data, ok, err := kv.Load("eesaa_invoices")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, string(data))
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Save("eesaa_customers", []byte(`[{"id":"C1"}]`)))
	require.NoError(t, kv.Close())

	reopened, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, ok, err := reopened.Load("eesaa_customers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"C1"}]`, string(data))
}
