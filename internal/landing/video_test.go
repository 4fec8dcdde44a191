package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		id   string
		ok   bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with extra params", "https://www.youtube.com/watch?list=PL123&v=abc_DEF-42&t=10s", "abc_DEF-42", true},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short url with query", "https://youtu.be/dQw4w9WgXcQ?t=30", "dQw4w9WgXcQ", true},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"other host", "https://vimeo.com/123456789", "", false},
		{"empty", "", "", false},
		{"garbage", "not a url at all", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestEmbedURL(t *testing.T) {
	url := EmbedURL("dQw4w9WgXcQ")
	assert.Contains(t, url, "youtube.com/embed/dQw4w9WgXcQ")
	assert.Contains(t, url, "autoplay=1")
	assert.Contains(t, url, "mute=1")
	assert.Contains(t, url, "playlist=dQw4w9WgXcQ")
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "appartement-marseille-france", Slug("Appartement", "Marseille", "France"))
	assert.Equal(t, "maison-d-architecte-saint-etienne", Slug("Maison d'architecte", "Saint-Étienne"))
	assert.Equal(t, "penthouse-munchen", Slug("Penthouse", "München"))
	assert.Equal(t, "", Slug("---", ""))
}
