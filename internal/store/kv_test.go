package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := OpenKV(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKVGetMissingKey(t *testing.T) {
	kv := newTestKV(t)

	_, err := kv.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKVPutGetRoundTrip(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Put("habits", []byte(`[{"id":"x"}]`)))

	got, err := kv.Get("habits")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"x"}]`), got)
}

func TestKVPutOverwrites(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Put("k", []byte("one")))
	require.NoError(t, kv.Put("k", []byte("two")))

	got, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestKVDelete(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Put("k", []byte("v")))
	require.NoError(t, kv.Delete("k"))

	_, err := kv.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is fine
	assert.NoError(t, kv.Delete("k"))
}

func TestKVKeys(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Put("b", []byte("2")))
	require.NoError(t, kv.Put("a", []byte("1")))

	keys, err := kv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := OpenKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put("k", []byte("v")))
	require.NoError(t, kv.Close())

	kv2, err := OpenKV(path)
	require.NoError(t, err)
	defer kv2.Close()

	got, err := kv2.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}
