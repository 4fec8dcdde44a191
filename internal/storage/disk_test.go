package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "https://www.example.com/")
	require.NoError(t, err)

	doc := []byte("<!DOCTYPE html><html></html>")
	require.NoError(t, store.Write(context.Background(), "appartement-marseille-13001.html", doc, "text/html; charset=utf-8"))

	got, err := os.ReadFile(filepath.Join(dir, "appartement-marseille-13001.html"))
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	// Rewriting the same page replaces it in place.
	require.NoError(t, store.Write(context.Background(), "appartement-marseille-13001.html", []byte("v2"), "text/html"))
	got, err = os.ReadFile(filepath.Join(dir, "appartement-marseille-13001.html"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "https://www.example.com")
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../evil.html", "a/b.html", `a\b.html`, ".hidden"} {
		assert.ErrorIs(t, store.Write(context.Background(), name, []byte("x"), "text/html"), ErrInvalidName, "name %q", name)
	}
}

func TestDiskStorePublicURL(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "https://www.example.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://www.example.com/pages/a.html", store.PublicURL("a.html"))
}
