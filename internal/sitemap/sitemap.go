package sitemap

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap is a file-backed urlset. All mutation goes through a single mutex
// and the file is rewritten atomically, so concurrent listing creations
// cannot lose entries.
type Sitemap struct {
	mu   sync.Mutex
	path string
}

func New(path string) (*Sitemap, error) {
	s := &Sitemap{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sitemap dir: %w", err)
		}
		if err := s.write(&urlSet{Xmlns: xmlns}); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add registers loc in the sitemap. Adding a URL that is already present is
// a no-op: the document never holds duplicate entries.
func (s *Sitemap) Add(loc string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.read()
	if err != nil {
		return err
	}

	for _, u := range set.URLs {
		if u.Loc == loc {
			return nil
		}
	}

	set.URLs = append(set.URLs, urlEntry{
		Loc:     loc,
		LastMod: time.Now().UTC().Format("2006-01-02"),
	})

	return s.write(set)
}

// URLs returns the registered locations in insertion order.
func (s *Sitemap) URLs() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.read()
	if err != nil {
		return nil, err
	}

	locs := make([]string, 0, len(set.URLs))
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	return locs, nil
}

// Path returns the location of the sitemap file, for the HTTP layer.
func (s *Sitemap) Path() string {
	return s.path
}

func (s *Sitemap) read() (*urlSet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read sitemap: %w", err)
	}

	var set urlSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse sitemap: %w", err)
	}
	set.Xmlns = xmlns
	return &set, nil
}

func (s *Sitemap) write(set *urlSet) error {
	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sitemap: %w", err)
	}
	data = append([]byte(xml.Header), data...)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "sitemap-*")
	if err != nil {
		return fmt.Errorf("create temp sitemap: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write sitemap: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close sitemap: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename sitemap: %w", err)
	}
	return nil
}
