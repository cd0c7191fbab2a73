package service

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/templui/mediavault/internal/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrPageNotFound = errors.New("page not found")

// Page is a static markdown page such as the FAQ or the terms of service.
type Page struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// PageService serves markdown files from a directory, one page per file.
type PageService struct {
	files  fs.FS
	parser *markdown.Parser
	reload bool

	mu    sync.RWMutex
	pages map[string]*Page
}

// NewPageService reads pages from files. With reload set, every lookup
// re-reads the file so edits show up without a restart.
func NewPageService(files fs.FS, reload bool) *PageService {
	return &PageService{
		files:  files,
		parser: markdown.NewParser(),
		reload: reload,
		pages:  make(map[string]*Page),
	}
}

func (s *PageService) Page(slug string) (*Page, error) {
	if !validSlug(slug) {
		return nil, ErrPageNotFound
	}

	if !s.reload {
		s.mu.RLock()
		page, ok := s.pages[slug]
		s.mu.RUnlock()
		if ok {
			return page, nil
		}
	}

	page, err := s.load(slug)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.pages[slug] = page
	s.mu.Unlock()

	return page, nil
}

func (s *PageService) load(slug string) (*Page, error) {
	name := slug + ".md"
	source, err := fs.ReadFile(s.files, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to read page %s: %w", slug, err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", slug, err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}

	lastUpdated := parseDate(meta["lastUpdated"])
	if lastUpdated == "" {
		info, statErr := fs.Stat(s.files, name)
		if statErr == nil && !info.ModTime().IsZero() {
			lastUpdated = info.ModTime().Format("January 2, 2006")
		}
	}

	return &Page{
		Title:       title,
		Slug:        slug,
		Content:     string(html),
		LastUpdated: lastUpdated,
	}, nil
}

func validSlug(slug string) bool {
	if slug == "" || strings.HasPrefix(slug, "-") {
		return false
	}
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// parseDate accepts the frontmatter date forms authors tend to use.
func parseDate(value any) string {
	var dateStr string

	switch v := value.(type) {
	case string:
		dateStr = v
	case time.Time:
		return v.Format("January 2, 2006")
	default:
		return ""
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"Jan 2, 2006",
		"January 2, 2006",
		time.RFC3339,
	}

	for _, format := range formats {
		t, err := time.Parse(format, dateStr)
		if err == nil {
			return t.Format("January 2, 2006")
		}
	}

	return dateStr
}
