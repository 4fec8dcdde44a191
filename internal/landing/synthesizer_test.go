package landing

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/model"
	"vitrine/internal/sitemap"
)

func testProperty() *model.Property {
	return &model.Property{
		ID:           "3f8a21bc-0000-0000-0000-000000000000",
		PropertyType: "Appartement",
		Country:      "France",
		City:         "Marseille",
		PostalCode:   "13001",
		Price:        250000,
		Surface:      80,
		Rooms:        4,
		YearBuilt:    1998,
		DPE:          "C",
		Description:  "Bel appartement lumineux proche du Vieux-Port.",
		FirstName:    "Jean",
		LastName:     "Martin",
		Phone:        "+33 6 12 34 56 78",
		Language:     "fr",
		Amenities:    model.Amenities{Parking: true, ElectricShutters: true},
	}
}

func testSynthesizer(t *testing.T) *Synthesizer {
	t.Helper()
	keywords, err := LoadKeywords()
	require.NoError(t, err)
	return NewSynthesizer(nil, nil, nil, "", "/uploads", keywords, rand.New(rand.NewSource(1)))
}

func renderDoc(t *testing.T, s *Synthesizer, p *model.Property) *goquery.Document {
	t.Helper()
	html, err := s.Render(p)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderGalleryPhotoSlots(t *testing.T) {
	s := testSynthesizer(t)

	t.Run("submitted photos keep their order", func(t *testing.T) {
		p := testProperty()
		p.Photos = []string{"a.jpg", "b.jpg", "c.jpg"}
		doc := renderDoc(t, s, p)

		slider := doc.Find(".hero-slider img.slide")
		require.Equal(t, 2, slider.Length())
		assert.Equal(t, "/uploads/a.jpg", slider.Eq(0).AttrOr("src", ""))
		assert.Equal(t, "/uploads/b.jpg", slider.Eq(1).AttrOr("src", ""))

		carousel := doc.Find(".carousel .card img")
		require.Equal(t, 8, carousel.Length())
		assert.Equal(t, "/uploads/c.jpg", carousel.Eq(0).AttrOr("src", ""))
		for i := 1; i < 8; i++ {
			assert.Equal(t, "/uploads/placeholder.jpg", carousel.Eq(i).AttrOr("src", ""))
		}

		mini := doc.Find(".mini-carousel .card img")
		require.Equal(t, 3, mini.Length())
		mini.Each(func(_ int, sel *goquery.Selection) {
			assert.Equal(t, "/uploads/placeholder.jpg", sel.AttrOr("src", ""))
		})
	})

	t.Run("thirteen photos fill every slot", func(t *testing.T) {
		p := testProperty()
		for i := 0; i < 13; i++ {
			p.Photos = append(p.Photos, string(rune('a'+i))+".jpg")
		}
		doc := renderDoc(t, s, p)

		assert.Equal(t, "/uploads/c.jpg", doc.Find(".carousel .card img").First().AttrOr("src", ""))
		assert.Equal(t, "/uploads/k.jpg", doc.Find(".mini-carousel .card img").First().AttrOr("src", ""))
		assert.Zero(t, doc.Find(`img[src="/uploads/placeholder.jpg"]`).Length())
	})

	t.Run("nil photo list renders all placeholders", func(t *testing.T) {
		p := testProperty()
		p.Photos = nil
		doc := renderDoc(t, s, p)

		assert.Equal(t, 13, doc.Find(`img[src="/uploads/placeholder.jpg"]`).Length())
	})
}

func TestRenderVideoLayout(t *testing.T) {
	s := testSynthesizer(t)

	p := testProperty()
	p.VideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	p.Photos = []string{"a.jpg"} // must not leak into the video layout
	doc := renderDoc(t, s, p)

	assert.Zero(t, doc.Find("img").Length(), "video layout must carry no photo elements")

	frames := doc.Find("iframe.video-bg")
	require.Equal(t, 1, frames.Length())
	src := frames.AttrOr("src", "")
	assert.Contains(t, src, "/embed/dQw4w9WgXcQ")
	assert.Contains(t, src, "autoplay=1")
	assert.Contains(t, src, "mute=1")
	assert.Contains(t, src, "loop=1")

	// Contact details are in the modal revealed by the visit CTA.
	assert.Contains(t, doc.Find("#contact-modal").Text(), "Jean")
}

func TestRenderUnrecognizedVideoFallsBackToGallery(t *testing.T) {
	s := testSynthesizer(t)

	p := testProperty()
	p.VideoURL = "https://vimeo.com/123456"
	doc := renderDoc(t, s, p)

	assert.Zero(t, doc.Find("iframe.video-bg").Length())
	assert.Equal(t, 2, doc.Find(".hero-slider img.slide").Length())
}

func TestRenderEnergyBands(t *testing.T) {
	s := testSynthesizer(t)

	for _, grade := range model.DPEGrades {
		t.Run("grade "+grade, func(t *testing.T) {
			p := testProperty()
			p.DPE = grade
			doc := renderDoc(t, s, p)

			require.Equal(t, 7, doc.Find(".band").Length())
			active := doc.Find(".band.active")
			require.Equal(t, 1, active.Length())
			assert.Equal(t, grade, strings.TrimSpace(active.Text()))
			assert.Zero(t, doc.Find(".band.pending").Length())
		})
	}

	t.Run("pending sentinel is case-insensitive", func(t *testing.T) {
		p := testProperty()
		p.DPE = "eN CoUrS"
		doc := renderDoc(t, s, p)

		assert.Equal(t, 7, doc.Find(".band.pending").Length())
		assert.Zero(t, doc.Find(".band.active").Length())
		assert.Equal(t, "En cours", strings.TrimSpace(doc.Find(".dpe-label").Text()))
	})
}

func TestRenderMarseilleListing(t *testing.T) {
	s := testSynthesizer(t)

	p := testProperty()
	p.Photos = nil
	doc := renderDoc(t, s, p)

	assert.Contains(t, doc.Text(), "Marseille")
	assert.Contains(t, doc.Find("title").Text(), "Appartement à vendre")

	active := doc.Find(".band.active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "C", strings.TrimSpace(active.Text()))

	assert.Contains(t, doc.Find(".hero-caption .price").Text(), "250 000 €")
}

func TestRenderLocaleFallback(t *testing.T) {
	s := testSynthesizer(t)

	p := testProperty()
	p.Language = "nl" // no table, falls back to French
	doc := renderDoc(t, s, p)

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "fr", lang)
	assert.Contains(t, doc.Find("h2").Text(), "Informations complémentaires")
}

func TestRenderMetaKeywords(t *testing.T) {
	keywords, err := LoadKeywords()
	require.NoError(t, err)

	t.Run("sampled keywords come from the table entry", func(t *testing.T) {
		s := NewSynthesizer(nil, nil, nil, "", "/uploads", keywords, rand.New(rand.NewSource(42)))
		doc := renderDoc(t, s, testProperty())

		content, ok := doc.Find(`meta[name="keywords"]`).Attr("content")
		require.True(t, ok)

		picked := strings.Split(content, ", ")
		assert.Len(t, picked, 3)

		pool := keywords["fr"]["France"]
		for _, kw := range picked {
			assert.Contains(t, pool, kw)
		}
	})

	t.Run("absent table entry yields no keywords tag", func(t *testing.T) {
		s := testSynthesizer(t)
		p := testProperty()
		p.Country = "Atlantide"
		doc := renderDoc(t, s, p)

		assert.Zero(t, doc.Find(`meta[name="keywords"]`).Length())
	})
}

func TestRenderEscapesUserContent(t *testing.T) {
	s := testSynthesizer(t)

	p := testProperty()
	p.City = `<script>alert("pwned")</script>`
	p.Description = `"><img src=x onerror=alert(1)>`
	html, err := s.Render(p)
	require.NoError(t, err)

	assert.NotContains(t, string(html), `<script>alert("pwned")</script>`)
	assert.NotContains(t, string(html), `<img src=x onerror=`)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	require.NoError(t, err)
	assert.Contains(t, doc.Find(".facts").Text(), `<script>alert("pwned")</script>`)
}

func TestRenderStructuredData(t *testing.T) {
	s := testSynthesizer(t)

	html, err := s.Render(testProperty())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	require.NoError(t, err)

	block := doc.Find(`script[type="application/ld+json"]`).Text()
	assert.Contains(t, block, `"Residence"`)
	assert.Contains(t, block, `"Marseille"`)
	assert.Contains(t, block, `"13001"`)
}

type fakeStore struct {
	names map[string][]byte
	base  string
	err   error
}

func newFakeStore(base string) *fakeStore {
	return &fakeStore{names: make(map[string][]byte), base: base}
}

func (f *fakeStore) Write(_ context.Context, name string, data []byte, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.names[name] = data
	return nil
}

func (f *fakeStore) PublicURL(name string) string {
	return f.base + "/pages/" + name
}

func TestPublish(t *testing.T) {
	keywords, err := LoadKeywords()
	require.NoError(t, err)

	newTestSitemap := func(t *testing.T) *sitemap.Sitemap {
		sm, err := sitemap.New(filepath.Join(t.TempDir(), "sitemap.xml"))
		require.NoError(t, err)
		return sm
	}

	t.Run("writes the page and registers the URL", func(t *testing.T) {
		pinged := make(chan struct{}, 4)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pinged <- struct{}{}
		}))
		defer srv.Close()

		store := newFakeStore("https://www.example.com")
		sm := newTestSitemap(t)
		pinger := sitemap.NewPinger(srv.URL + "/ping?sitemap=%s")
		s := NewSynthesizer(store, sm, pinger, "https://www.example.com/sitemap.xml",
			"/uploads", keywords, rand.New(rand.NewSource(1)))

		url, err := s.Publish(context.Background(), testProperty())
		require.NoError(t, err)

		assert.Equal(t, "https://www.example.com/pages/appartement-marseille-france-3f8a21bc.html", url)
		assert.True(t, strings.HasSuffix(url, ".html"))
		require.Len(t, store.names, 1)

		locs, err := sm.URLs()
		require.NoError(t, err)
		assert.Equal(t, []string{url}, locs)

		<-pinged // fire-and-forget ping reached the endpoint
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		store := newFakeStore("https://www.example.com")
		store.err = errors.New("disk full")
		sm := newTestSitemap(t)
		s := NewSynthesizer(store, sm, sitemap.NewPinger("http://127.0.0.1:0/%s"),
			"", "/uploads", keywords, rand.New(rand.NewSource(1)))

		_, err := s.Publish(context.Background(), testProperty())
		require.Error(t, err)

		locs, err := sm.URLs()
		require.NoError(t, err)
		assert.Empty(t, locs, "failed pages must not reach the sitemap")
	})

	t.Run("republishing keeps one sitemap entry", func(t *testing.T) {
		store := newFakeStore("https://www.example.com")
		sm := newTestSitemap(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()
		s := NewSynthesizer(store, sm, sitemap.NewPinger(srv.URL+"/%s"),
			"", "/uploads", keywords, rand.New(rand.NewSource(1)))

		p := testProperty()
		_, err := s.Publish(context.Background(), p)
		require.NoError(t, err)
		_, err = s.Publish(context.Background(), p)
		require.NoError(t, err)

		locs, err := sm.URLs()
		require.NoError(t, err)
		assert.Len(t, locs, 1)
	})
}
