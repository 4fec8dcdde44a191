package sitemap

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSitemap(t *testing.T) *Sitemap {
	t.Helper()
	sm, err := New(filepath.Join(t.TempDir(), "sitemap.xml"))
	require.NoError(t, err)
	return sm
}

func TestNewCreatesEmptySkeleton(t *testing.T) {
	sm := newTestSitemap(t)

	data, err := os.ReadFile(sm.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "<urlset")
	assert.Contains(t, string(data), "http://www.sitemaps.org/schemas/sitemap/0.9")

	locs, err := sm.URLs()
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestNewKeepsExistingEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")

	sm, err := New(path)
	require.NoError(t, err)
	require.NoError(t, sm.Add("https://www.example.com/pages/a.html"))

	// Reopening must not truncate the document.
	sm2, err := New(path)
	require.NoError(t, err)
	locs, err := sm2.URLs()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.example.com/pages/a.html"}, locs)
}

func TestAddIsIdempotent(t *testing.T) {
	sm := newTestSitemap(t)

	const loc = "https://www.example.com/pages/appartement-marseille-france-3f8a21bc.html"
	require.NoError(t, sm.Add(loc))
	require.NoError(t, sm.Add(loc))

	locs, err := sm.URLs()
	require.NoError(t, err)
	assert.Equal(t, []string{loc}, locs)
}

func TestAddConcurrentLosesNothing(t *testing.T) {
	sm := newTestSitemap(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, sm.Add(fmt.Sprintf("https://www.example.com/pages/p-%d.html", i)))
		}(i)
	}
	wg.Wait()

	locs, err := sm.URLs()
	require.NoError(t, err)
	assert.Len(t, locs, n)
}

func TestAddPreservesOrder(t *testing.T) {
	sm := newTestSitemap(t)

	require.NoError(t, sm.Add("https://a.example/1.html"))
	require.NoError(t, sm.Add("https://a.example/2.html"))
	require.NoError(t, sm.Add("https://a.example/1.html"))
	require.NoError(t, sm.Add("https://a.example/3.html"))

	locs, err := sm.URLs()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://a.example/1.html",
		"https://a.example/2.html",
		"https://a.example/3.html",
	}, locs)
}
