// Package branding loads the storefront's branding document: site
// identity, theme colors, logo, and the category navigation. The
// document is presentation configuration only; a missing file falls
// back to defaults so the storefront always renders.
package branding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Theme struct {
	PrimaryColor   string `json:"primaryColor" validate:"required"`
	SecondaryColor string `json:"secondaryColor" validate:"required"`
	AccentColor    string `json:"accentColor" validate:"required"`
	FontFamily     string `json:"fontFamily" validate:"required"`
}

type Logo struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type Category struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

type Branding struct {
	SiteName   string     `json:"siteName" validate:"required"`
	Tagline    string     `json:"tagline"`
	Theme      Theme      `json:"theme" validate:"required"`
	Logo       Logo       `json:"logo"`
	Categories []Category `json:"categories" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default is used when no branding file is configured or present.
func Default() *Branding {
	return &Branding{
		SiteName: "Shopfront",
		Tagline:  "Retail search & recommendations demo",
		Theme: Theme{
			PrimaryColor:   "#1a73e8",
			SecondaryColor: "#f8f9fa",
			AccentColor:    "#fbbc04",
			FontFamily:     "system-ui, sans-serif",
		},
	}
}

// Load reads and validates the branding document at path. A missing
// file yields the defaults, not an error; a malformed file is an error
// so a bad deploy is noticed rather than silently unthemed.
func Load(path string) (*Branding, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read branding: %w", err)
	}

	var b Branding
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse branding: %w", err)
	}
	if err := validate.Struct(&b); err != nil {
		return nil, fmt.Errorf("validate branding: %w", err)
	}
	return &b, nil
}

// CategoryName looks a slug up in the document's category list.
func (b *Branding) CategoryName(slug string) (string, bool) {
	for _, c := range b.Categories {
		if c.Slug == slug {
			return c.Name, true
		}
	}
	return "", false
}

// Provider holds the current branding document and swaps it atomically
// on reload, so request handlers always see a complete document.
type Provider struct {
	mu      sync.RWMutex
	current *Branding
}

func NewProvider(b *Branding) *Provider {
	if b == nil {
		b = Default()
	}
	return &Provider{current: b}
}

func (p *Provider) Current() *Branding {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *Provider) Replace(b *Branding) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = b
}

// CategoryName satisfies the storefront controller's resolver interface
// against the current document.
func (p *Provider) CategoryName(slug string) (string, bool) {
	return p.Current().CategoryName(slug)
}
