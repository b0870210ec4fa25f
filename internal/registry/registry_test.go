package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIsIdempotent(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "registry.json"))
	r.Add("tx1", []byte{0x01, 0x02})
	r.Add("tx1", []byte{0xff}) // second add with same id is a no-op

	script, ok := r.Get("tx1")
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02}, script)
	assert.Len(t, r.List(), 1)
}

func TestRemoveIsNoOpWhenAbsent(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "registry.json"))
	r.Remove("missing") // must not panic
	assert.Len(t, r.List(), 0)
}

func TestSurvivesSimulatedRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")

	r1 := New(path)
	r1.Add("tx1", []byte{0x01})
	r1.Add("tx2", []byte{0x02, 0x03})
	require.NoError(t, r1.Flush())

	r2 := New(path)
	require.NoError(t, r2.Load())

	for _, want := range []struct {
		id     string
		script []byte
	}{{"tx1", []byte{0x01}}, {"tx2", []byte{0x02, 0x03}}} {
		got, ok := r2.Get(want.id)
		require.True(t, ok)
		assert.Equal(t, want.script, got)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, r.Load())
	assert.Len(t, r.List(), 0)
}

func TestLoadRejectsCorruptedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"entries":[{"commitTxId":"tx1","redeemScriptHex":"01"}],"checksum":"00"}`), 0o600))

	r := New(path)
	err := r.Load()
	require.Error(t, err)
}

func TestRemoveFiltersByKey(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "registry.json"))
	r.Add("tx1", []byte{0x01})
	r.Add("tx2", []byte{0x02})
	r.Remove("tx1")

	_, ok := r.Get("tx1")
	assert.False(t, ok)
	_, ok = r.Get("tx2")
	assert.True(t, ok)
}
