package landing

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"vitrine/internal/model"
	"vitrine/internal/sitemap"
	"vitrine/internal/storage"
)

const (
	sliderSlots   = 2
	carouselSlots = 8
	miniSlots     = 3

	placeholderPhoto = "placeholder.jpg"
	metaKeywordCount = 3
)

// Synthesizer turns a property record into a standalone landing page and
// publishes it: durable write, sitemap registration, crawler ping.
type Synthesizer struct {
	store      storage.PageStore
	sitemap    *sitemap.Sitemap
	pinger     *sitemap.Pinger
	sitemapURL string
	photoBase  string
	keywords   KeywordTable

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

func NewSynthesizer(store storage.PageStore, sm *sitemap.Sitemap, pinger *sitemap.Pinger,
	sitemapURL, photoBase string, keywords KeywordTable, rnd *rand.Rand) *Synthesizer {
	return &Synthesizer{
		store:      store,
		sitemap:    sm,
		pinger:     pinger,
		sitemapURL: sitemapURL,
		photoBase:  strings.TrimRight(photoBase, "/"),
		keywords:   keywords,
		rnd:        rnd,
	}
}

// PageName derives the stored document name from the property identifier and
// a slug of its type, city and country.
func PageName(p *model.Property) string {
	id := p.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return Slug(p.PropertyType, p.City, p.Country) + "-" + id + ".html"
}

// Publish renders the page, persists it and returns the public URL. A
// storage-write failure propagates; sitemap registration and crawler pings
// are best-effort and only logged.
func (s *Synthesizer) Publish(ctx context.Context, p *model.Property) (string, error) {
	doc, err := s.Render(p)
	if err != nil {
		return "", err
	}

	name := PageName(p)
	if err := s.store.Write(ctx, name, doc, "text/html; charset=utf-8"); err != nil {
		return "", fmt.Errorf("write landing page: %w", err)
	}
	publicURL := s.store.PublicURL(name)

	if err := s.sitemap.Add(publicURL); err != nil {
		slog.Error("sitemap registration failed", "url", publicURL, "error", err)
	} else {
		s.pinger.Ping(s.sitemapURL)
	}

	return publicURL, nil
}

// Render produces the complete HTML document for a property. Apart from the
// sampled meta keywords it is a pure function of the record.
func (s *Synthesizer) Render(p *model.Property) ([]byte, error) {
	t, lang := ForLanguage(p.Language)

	data := pageData{
		Lang:         lang,
		T:            t,
		City:         fallback(p.City, t.NotProvided),
		Country:      fallback(p.Country, t.NotProvided),
		PropertyType: fallback(p.PropertyType, t.NotProvided),
		Surface:      formatInt(p.Surface, " m²", t.NotProvided),
		Rooms:        formatInt(p.Rooms, "", t.NotProvided),
		Year:         formatInt(p.YearBuilt, "", t.NotProvided),
		Description:  p.Description,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Phone:        p.Phone,
		Amenities:    amenityLabels(p.Amenities, t),
		Bands:        EnergyBands(p.DPE),
		GeoQuery:     p.City + ", " + p.Country,
		JSONLD:       structuredData(p),
	}

	data.Title = fmt.Sprintf("%s %s – %s (%s)", data.PropertyType, t.ForSale, data.City, data.Country)
	data.Price = formatPrice(p.Price, t)
	data.MetaDesc = metaDescription(p, data.Title)
	data.Keywords = strings.Join(s.sampleKeywords(lang, p.Country), ", ")

	if strings.EqualFold(p.DPE, model.DPEPending) {
		data.Pending = true
		data.GradeLabel = t.InProgress
	} else {
		data.GradeLabel = strings.ToUpper(p.DPE)
	}

	// Photos and video are mutually exclusive: a recognized video URL means
	// the page carries no photo elements at all.
	if id, ok := ExtractVideoID(p.VideoURL); p.VideoURL != "" && ok {
		data.Video = EmbedURL(id)
	} else {
		photos := p.Photos // nil is fine, slots fall back to the placeholder
		data.Slider = s.photoSlots(photos, 0, sliderSlots)
		data.Carousel = s.photoSlots(photos, sliderSlots, carouselSlots)
		data.Mini = s.photoSlots(photos, sliderSlots+carouselSlots, miniSlots)
	}

	var buf bytes.Buffer
	if err := pageTpl.Execute(&buf, &data); err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}
	return buf.Bytes(), nil
}

type pageData struct {
	Lang         string
	Title        string
	MetaDesc     string
	Keywords     string
	T            Strings
	City         string
	Country      string
	PropertyType string
	Price        string
	Surface      string
	Rooms        string
	Year         string
	GradeLabel   string
	Pending      bool
	Bands        []Band
	Amenities    []string
	Description  string
	Video        string
	Slider       []string
	Carousel     []string
	Mini         []string
	FirstName    string
	LastName     string
	Phone        string
	GeoQuery     string
	JSONLD       any
}

// photoSlots fills a fixed-size section with photos starting at start,
// keeping submission order. Slots past the end of the list render the
// placeholder image.
func (s *Synthesizer) photoSlots(photos []string, start, count int) []string {
	out := make([]string, 0, count)
	for i := start; i < start+count; i++ {
		if i < len(photos) {
			out = append(out, s.photoBase+"/"+photos[i])
		} else {
			out = append(out, s.photoBase+"/"+placeholderPhoto)
		}
	}
	return out
}

func (s *Synthesizer) sampleKeywords(lang, country string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keywords.Sample(lang, country, metaKeywordCount, s.rnd)
}

func amenityLabels(a model.Amenities, t Strings) []string {
	var out []string
	for _, entry := range []struct {
		on    bool
		label string
	}{
		{a.Pool, t.Amenities.Pool},
		{a.Watering, t.Amenities.Watering},
		{a.CarShelter, t.Amenities.CarShelter},
		{a.Parking, t.Amenities.Parking},
		{a.CaretakerHouse, t.Amenities.CaretakerHouse},
		{a.ElectricShutters, t.Amenities.ElectricShutters},
		{a.OutdoorLighting, t.Amenities.OutdoorLighting},
	} {
		if entry.on {
			out = append(out, entry.label)
		}
	}
	return out
}

// structuredData builds the schema.org residence block consumed by search
// engines. Rendered in a JSON script context, so values are escaped there.
func structuredData(p *model.Property) any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "Residence",
		"name":     p.PropertyType + " – " + p.City,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": p.City,
			"postalCode":      p.PostalCode,
			"addressCountry":  p.Country,
		},
		"floorSize": map[string]any{
			"@type":    "QuantitativeValue",
			"value":    p.Surface,
			"unitCode": "MTK",
		},
		"numberOfRooms": p.Rooms,
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         p.Price,
			"priceCurrency": "EUR",
		},
	}
}

func metaDescription(p *model.Property, title string) string {
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		return title
	}
	if r := []rune(desc); len(r) > 160 {
		desc = string(r[:157]) + "..."
	}
	return desc
}

// formatPrice groups thousands the French way: "250 000 €".
func formatPrice(price float64, t Strings) string {
	if price <= 0 {
		return t.PriceOnRequest
	}

	digits := strconv.FormatInt(int64(price), 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(d)
	}
	return b.String() + " €"
}

func fallback(v, missing string) string {
	if strings.TrimSpace(v) == "" {
		return missing
	}
	return v
}

func formatInt(v int, suffix, missing string) string {
	if v <= 0 {
		return missing
	}
	return strconv.Itoa(v) + suffix
}
