package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in   string
		want ContentType
		ok   bool
	}{
		{"Social Media Post", SocialPost, true},
		{"blog post", BlogPost, true},
		{"email", EmailCopy, true},
		{" tagline ", Tagline, true},
		{"Tagline / Slogan", Tagline, true},
		{"podcast", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseContentType(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParsePlatformAndTone(t *testing.T) {
	p, ok := ParsePlatform("x")
	require.True(t, ok)
	assert.Equal(t, Twitter, p)

	p, ok = ParsePlatform("X (Twitter)")
	require.True(t, ok)
	assert.Equal(t, Twitter, p)

	_, ok = ParsePlatform("myspace")
	assert.False(t, ok)

	tone, ok := ParseTone("WITTY")
	require.True(t, ok)
	assert.Equal(t, Witty, tone)

	_, ok = ParseTone("sarcastic")
	assert.False(t, ok)
}

func TestUsesPlatform(t *testing.T) {
	for _, ct := range ContentTypes() {
		want := ct == SocialPost || ct == AdCopy
		assert.Equal(t, want, ct.UsesPlatform(), string(ct))
	}
}

func TestRequest_WithDefaults(t *testing.T) {
	req := Request{Topic: "Aurora Coffee"}.WithDefaults()
	assert.Equal(t, SocialPost, req.ContentType)
	assert.Equal(t, Instagram, req.Platform)
	assert.Equal(t, Professional, req.Tone)

	kept := Request{ContentType: BlogPost, Platform: General, Tone: Witty}.WithDefaults()
	assert.Equal(t, BlogPost, kept.ContentType)
	assert.Equal(t, General, kept.Platform)
	assert.Equal(t, Witty, kept.Tone)
}

func TestRequest_Validate(t *testing.T) {
	req := DefaultRequest()
	err := req.Validate()
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "topic", ve.Field)
	assert.True(t, IsValidation(err))

	req.Topic = "Aurora Coffee"
	assert.NoError(t, req.Validate())

	req.Tone = Tone("Sarcastic")
	err = req.Validate()
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tone", ve.Field)
	assert.Contains(t, err.Error(), "Sarcastic")
}

func TestNewResult(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	a := NewResult("hello", Tagline, at)
	b := NewResult("hello", Tagline, at)

	assert.Equal(t, "hello", a.Content)
	assert.Equal(t, Tagline, a.ContentType)
	assert.Equal(t, at, a.CreatedAt)
	assert.NotEqual(t, a.ID, b.ID)
}
