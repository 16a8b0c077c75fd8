package visitor

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^visitor_\d+_[a-z0-9]{9}$`)

func TestSynthesizeFormat(t *testing.T) {
	id := Synthesize()
	assert.Regexp(t, idPattern, id)
	assert.NotEqual(t, id, Synthesize())
}

func newFileStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "visitor_id")
	return NewStore(NewFileBackend(path))
}

func TestGetOrCreateRoundTrip(t *testing.T) {
	store := newFileStore(t)

	first, err := store.GetOrCreate()
	require.NoError(t, err)
	assert.Regexp(t, idPattern, first)

	second, err := store.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetOrCreatePersistsAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitor_id")

	first, err := NewStore(NewFileBackend(path)).GetOrCreate()
	require.NoError(t, err)

	// A fresh store over the same backend must see the same id.
	second, err := NewStore(NewFileBackend(path)).GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSetNotifiesSubscribers(t *testing.T) {
	store := newFileStore(t)

	var seen []string
	cancel := store.Subscribe(func(id string) { seen = append(seen, id) })

	require.NoError(t, store.Set("visitor_demo_alice"))
	assert.Equal(t, []string{"visitor_demo_alice"}, seen)

	id, err := store.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, "visitor_demo_alice", id)

	cancel()
	require.NoError(t, store.Set("visitor_demo_bob"))
	assert.Equal(t, []string{"visitor_demo_alice"}, seen, "cancelled subscriber must not fire")
}

func TestRegenerateReplacesID(t *testing.T) {
	store := newFileStore(t)

	old, err := store.GetOrCreate()
	require.NoError(t, err)

	fresh, err := store.Regenerate()
	require.NoError(t, err)
	assert.NotEqual(t, old, fresh)
	assert.Regexp(t, idPattern, fresh)

	current, err := store.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, fresh, current)
}

func TestFileBackendMissingFile(t *testing.T) {
	backend := NewFileBackend(filepath.Join(t.TempDir(), "nope", "visitor_id"))
	id, err := backend.Load()
	require.NoError(t, err)
	assert.Empty(t, id)
}
