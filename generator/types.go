package generator

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentType is the kind of marketing copy to produce.
type ContentType string

const (
	SocialPost  ContentType = "Social Media Post"
	ProductDesc ContentType = "Product Description"
	BlogPost    ContentType = "Blog Post"
	EmailCopy   ContentType = "Email Marketing Copy"
	AdCopy      ContentType = "Ad Copy"
	Tagline     ContentType = "Tagline / Slogan"
)

// ContentTypes lists every content type in display order.
func ContentTypes() []ContentType {
	return []ContentType{SocialPost, ProductDesc, BlogPost, EmailCopy, AdCopy, Tagline}
}

func (c ContentType) Valid() bool {
	for _, v := range ContentTypes() {
		if c == v {
			return true
		}
	}
	return false
}

// UsesPlatform reports whether the platform field applies to this content type.
func (c ContentType) UsesPlatform() bool {
	return c == SocialPost || c == AdCopy
}

// Platform is the channel the copy is written for.
type Platform string

const (
	Instagram Platform = "Instagram"
	LinkedIn  Platform = "LinkedIn"
	Twitter   Platform = "X (Twitter)"
	Facebook  Platform = "Facebook"
	GoogleAds Platform = "Google Ads"
	General   Platform = "General"
)

func Platforms() []Platform {
	return []Platform{Instagram, LinkedIn, Twitter, Facebook, GoogleAds, General}
}

func (p Platform) Valid() bool {
	for _, v := range Platforms() {
		if p == v {
			return true
		}
	}
	return false
}

// Tone is the voice of the generated copy.
type Tone string

const (
	Professional Tone = "Professional"
	Casual       Tone = "Casual"
	Enthusiastic Tone = "Enthusiastic"
	Witty        Tone = "Witty"
	Urgent       Tone = "Urgent"
	Luxury       Tone = "Luxury"
	Empathetic   Tone = "Empathetic"
)

func Tones() []Tone {
	return []Tone{Professional, Casual, Enthusiastic, Witty, Urgent, Luxury, Empathetic}
}

func (t Tone) Valid() bool {
	for _, v := range Tones() {
		if t == v {
			return true
		}
	}
	return false
}

var contentTypeSlugs = map[string]ContentType{
	"social":  SocialPost,
	"product": ProductDesc,
	"blog":    BlogPost,
	"email":   EmailCopy,
	"ad":      AdCopy,
	"ads":     AdCopy,
	"tagline": Tagline,
	"slogan":  Tagline,
}

var platformSlugs = map[string]Platform{
	"instagram":  Instagram,
	"linkedin":   LinkedIn,
	"x":          Twitter,
	"twitter":    Twitter,
	"facebook":   Facebook,
	"google-ads": GoogleAds,
	"googleads":  GoogleAds,
	"general":    General,
}

// ParseContentType accepts a display label (any case) or a short slug such as "blog".
func ParseContentType(s string) (ContentType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, v := range ContentTypes() {
		if strings.ToLower(string(v)) == key {
			return v, true
		}
	}
	v, ok := contentTypeSlugs[key]
	return v, ok
}

// ParsePlatform accepts a display label (any case) or a short slug such as "x".
func ParsePlatform(s string) (Platform, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Platforms() {
		if strings.ToLower(string(v)) == key {
			return v, true
		}
	}
	v, ok := platformSlugs[key]
	return v, ok
}

func ParseTone(s string) (Tone, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Tones() {
		if strings.ToLower(string(v)) == key {
			return v, true
		}
	}
	return "", false
}

// Request is what the form submits for one generation.
type Request struct {
	ContentType ContentType `json:"content_type" validate:"enum"`
	Platform    Platform    `json:"platform" validate:"enum"`
	Topic       string      `json:"topic" validate:"required"`
	Audience    string      `json:"audience"`
	Tone        Tone        `json:"tone" validate:"enum"`
	Details     string      `json:"details"`
}

// DefaultRequest is the initial form state.
func DefaultRequest() Request {
	return Request{
		ContentType: SocialPost,
		Platform:    Instagram,
		Tone:        Professional,
	}
}

// WithDefaults fills unset enum fields from DefaultRequest.
func (r Request) WithDefaults() Request {
	def := DefaultRequest()
	if r.ContentType == "" {
		r.ContentType = def.ContentType
	}
	if r.Platform == "" {
		r.Platform = def.Platform
	}
	if r.Tone == "" {
		r.Tone = def.Tone
	}
	return r
}

// Result is one successful generation. Treat it as immutable.
type Result struct {
	ID          uuid.UUID   `json:"id"`
	Content     string      `json:"content"`
	ContentType ContentType `json:"content_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewResult stamps content produced for ct at the given time.
func NewResult(content string, ct ContentType, at time.Time) Result {
	return Result{
		ID:          uuid.New(),
		Content:     content,
		ContentType: ct,
		CreatedAt:   at,
	}
}
