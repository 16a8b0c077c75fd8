package branding

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validDoc = `{
  "siteName": "Cymbal Shops",
  "tagline": "Everything for your home",
  "theme": {
    "primaryColor": "#0f9d58",
    "secondaryColor": "#ffffff",
    "accentColor": "#f4b400",
    "fontFamily": "Inter, sans-serif"
  },
  "logo": {"url": "/static/logo.svg", "alt": "Cymbal Shops"},
  "categories": [
    {"name": "Home & Garden", "slug": "home-garden"},
    {"name": "Apparel", "slug": "apparel"}
  ]
}`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "branding.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidDocument(t *testing.T) {
	b, err := Load(writeDoc(t, validDoc))
	require.NoError(t, err)
	assert.Equal(t, "Cymbal Shops", b.SiteName)
	assert.Equal(t, "#0f9d58", b.Theme.PrimaryColor)
	require.Len(t, b.Categories, 2)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default().SiteName, b.SiteName)
}

func TestLoadEmptyPathFallsBack(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, b.Theme.PrimaryColor)
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	_, err := Load(writeDoc(t, `{"siteName": ""}`))
	require.Error(t, err)

	_, err = Load(writeDoc(t, `not json`))
	require.Error(t, err)
}

func TestCategoryName(t *testing.T) {
	b, err := Load(writeDoc(t, validDoc))
	require.NoError(t, err)

	name, ok := b.CategoryName("home-garden")
	assert.True(t, ok)
	assert.Equal(t, "Home & Garden", name)

	_, ok = b.CategoryName("unknown")
	assert.False(t, ok)
}

func TestWatchReloads(t *testing.T) {
	path := writeDoc(t, validDoc)

	b, err := Load(path)
	require.NoError(t, err)
	provider := NewProvider(b)

	stop, err := Watch(path, provider, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer stop()

	updated := `{
  "siteName": "Renamed Shops",
  "theme": {
    "primaryColor": "#000000",
    "secondaryColor": "#ffffff",
    "accentColor": "#ff0000",
    "fontFamily": "serif"
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	require.Eventually(t, func() bool {
		return provider.Current().SiteName == "Renamed Shops"
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatchKeepsPreviousOnBadReload(t *testing.T) {
	path := writeDoc(t, validDoc)

	b, err := Load(path)
	require.NoError(t, err)
	provider := NewProvider(b)

	stop, err := Watch(path, provider, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("broken"), 0o644))

	// Give the debounced reload time to run; the document must survive.
	time.Sleep(time.Second)
	assert.Equal(t, "Cymbal Shops", provider.Current().SiteName)
}
