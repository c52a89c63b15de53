package extensions

import (
	"strings"
	"testing"

	"github.com/TalentLink/talentGo/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestExtractLinks(t *testing.T) {
	links := ExtractLinks("check https://example.com/a and http://example.org/b out")

	assert.Equal(t, []string{"https://example.com/a", "http://example.org/b"}, links)
}

func TestExtractLinks_NoLinks(t *testing.T) {
	assert.Empty(t, ExtractLinks("plain text, no urls here"))
}

func TestScrapePreview(t *testing.T) {
	page := `<html><head>
		<title>Page Title</title>
		<meta name="description" content="A description">
		<meta property="og:image" content="https://example.com/img.png">
	</head><body><p>ignored</p></body></html>`

	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	preview := dto.WebPreview{Url: "https://example.com"}
	scrapePreview(doc, &preview)

	assert.Equal(t, "Page Title", preview.Title)
	assert.Equal(t, "A description", preview.Description)
	assert.Equal(t, "https://example.com/img.png", preview.PreviewImage)
}

func TestScrapePreview_OgTagsFillGaps(t *testing.T) {
	page := `<html><head>
		<meta property="og:title" content="OG Title">
		<meta property="og:description" content="OG description">
	</head></html>`

	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	preview := dto.WebPreview{Url: "https://example.com"}
	scrapePreview(doc, &preview)

	assert.Equal(t, "OG Title", preview.Title)
	assert.Equal(t, "OG description", preview.Description)
}
