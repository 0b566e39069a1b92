// Package content loads the marketing copy and review data of the site from
// YAML. A default document is embedded in the binary.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// Announcement is the bar pinned to the top of the landing page.
type Announcement struct {
	Prefix    string `yaml:"prefix"`
	Highlight string `yaml:"highlight"`
	Suffix    string `yaml:"suffix"`
}

// Hero is the landing page headline block.
type Hero struct {
	Rating   string `yaml:"rating"`
	Headline string `yaml:"headline"`
	Body     string `yaml:"body"`
	Video    string `yaml:"video"`
	Poster   string `yaml:"poster"`
}

// Partners is the logo marquee.
type Partners struct {
	Heading string   `yaml:"heading"`
	Logos   []string `yaml:"logos"`
}

// Testimonial is one entry of the wrapping testimonial slider.
type Testimonial struct {
	Title          string   `yaml:"title"`
	BrandImage     string   `yaml:"brand_image"`
	BrandName      string   `yaml:"brand_name"`
	BrandFollowers string   `yaml:"brand_followers"`
	BrandHandle    string   `yaml:"brand_handle"`
	Description    string   `yaml:"description"`
	Tags           []string `yaml:"tags"`
	VideoID        string   `yaml:"video_id"`
}

// VideoReview is one card of the video review slider.
type VideoReview struct {
	VideoID     string `yaml:"video_id"`
	IGN         string `yaml:"ign"`
	Followers   string `yaml:"followers"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// Testimonials is the testimonial section.
type Testimonials struct {
	Heading string        `yaml:"heading"`
	Items   []Testimonial `yaml:"items"`
}

// VideoReviews is the video review section.
type VideoReviews struct {
	Heading string        `yaml:"heading"`
	Accent  string        `yaml:"accent"`
	Items   []VideoReview `yaml:"items"`
}

// Screenshots is the results gallery section. Images are paths relative to
// the screenshots asset directory.
type Screenshots struct {
	Heading string   `yaml:"heading"`
	Images  []string `yaml:"images"`
}

// Content is the full copy deck of the site.
type Content struct {
	Announcement Announcement `yaml:"announcement"`
	Hero         Hero         `yaml:"hero"`
	Partners     Partners     `yaml:"partners"`
	Testimonials Testimonials `yaml:"testimonials"`
	VideoReviews VideoReviews `yaml:"video_reviews"`
	Screenshots  Screenshots  `yaml:"screenshots"`
}

// Load parses the embedded content document.
func Load() (Content, error) {
	return Decode(bytes.NewReader(embedded))
}

// LoadFile parses the content document at path.
func LoadFile(path string) (Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return Content{}, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a content document, rejecting unknown keys.
func Decode(r io.Reader) (Content, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Content
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Content{}, errors.New("decode content: empty document")
		}
		return Content{}, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Validate checks the fields the pages cannot render without.
func (c Content) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Hero.Headline) == "" {
		problems = append(problems, "hero.headline is required")
	}
	for i, t := range c.Testimonials.Items {
		if strings.TrimSpace(t.BrandName) == "" {
			problems = append(problems, fmt.Sprintf("testimonials.items[%d].brand_name is required", i))
		}
	}
	for i, v := range c.VideoReviews.Items {
		if strings.TrimSpace(v.VideoID) == "" {
			problems = append(problems, fmt.Sprintf("video_reviews.items[%d].video_id is required", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid content: %s", strings.Join(problems, "; "))
	}
	return nil
}
