package sitemap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyAndPriority(t *testing.T) {
	tests := []struct {
		route    string
		freq     string
		priority float64
	}{
		{"/", "daily", 1.0},
		{"/blog/launch", "weekly", 0.8},
		{"/docs/getting-started", "monthly", 0.7},
		{"/marketplace", "weekly", 0.6},
		{ListingRoute(3), "weekly", 0.6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.freq, ChangeFrequency(tt.route), tt.route)
		assert.Equal(t, tt.priority, Priority(tt.route), tt.route)
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	entries := Build("https://fractionax.app/", []string{"/", "/marketplace"}, now)

	require.Len(t, entries, 2)
	assert.Equal(t, "https://fractionax.app/", entries[0].Loc)
	assert.Equal(t, "https://fractionax.app/marketplace", entries[1].Loc)
	assert.Equal(t, "2025-01-02T03:04:05Z", entries[1].LastMod)
}

func TestBuildWithoutBaseURL(t *testing.T) {
	entries := Build("", []string{"/"}, time.Now())
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestMarshal(t *testing.T) {
	body, err := Marshal(Build("https://fractionax.app", []string{"/"}, time.Now()))
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://fractionax.app/</loc>")
	assert.Contains(t, out, "<changefreq>daily</changefreq>")
	assert.Contains(t, out, "<priority>1</priority>")
}
