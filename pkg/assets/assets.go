// Package assets resolves the font and logo files the PDF renderer embeds.
// Files are located once at startup; a missing file is logged and its slot
// left empty so rendering can fall back instead of failing.
package assets

import (
	"log"
	"os"
	"sync"
)

// Store holds resolved asset paths. Empty fields mean the asset is absent and
// the renderer should degrade (core fonts, no logo).
type Store struct {
	mu sync.RWMutex

	fontRegular string
	fontBold    string
	logo        string
}

// Config names the asset files to resolve.
type Config struct {
	FontRegular string
	FontBold    string
	Logo        string
}

// Load resolves the configured paths, dropping any that do not exist.
func Load(cfg Config) *Store {
	s := &Store{}
	s.reload(cfg)
	return s
}

func (s *Store) reload(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontRegular = resolve("regular font", cfg.FontRegular)
	s.fontBold = resolve("bold font", cfg.FontBold)
	s.logo = resolve("logo", cfg.Logo)
}

// Reload re-resolves the same paths, picking up files dropped in after start.
func (s *Store) Reload(cfg Config) {
	s.reload(cfg)
}

func resolve(name, path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("assets: %s not available at %s: %v", name, path, err)
		return ""
	}
	return path
}

// FontRegular returns the regular font path, or "" when absent.
func (s *Store) FontRegular() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fontRegular
}

// FontBold returns the bold font path, or "" when absent.
func (s *Store) FontBold() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fontBold
}

// Logo returns the logo path, or "" when absent.
func (s *Store) Logo() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logo
}

// HasFonts reports whether both font files resolved.
func (s *Store) HasFonts() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fontRegular != "" && s.fontBold != ""
}
