package extensions

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

var linkRegex = regexp.MustCompile(`(https?://[^\s]+)`)

// SaveTags upserts the post's tags, bumping usage counts for ranking.
func SaveTags(talentDb db.TalentDbInterface, tenant string, tags []string) chan bool {
	done := make(chan bool, 1)

	go func() {
		for _, tag := range tags {
			existingChan, errChan := talentDb.Tag(tenant).FindOneById(tag)
			select {
			case existing := <-existingChan:
				existing.NumPosts++
				<-talentDb.Tag(tenant).Save(existing)
			case <-errChan:
				<-talentDb.Tag(tenant).Save(&models.PostTagModel{
					Tag:      tag,
					NumPosts: 1,
				})
			}
		}
		done <- true
	}()

	return done
}

// ExtractLinks returns all http(s) URLs found in the post content.
func ExtractLinks(content string) []string {
	return linkRegex.FindAllString(content, -1)
}

// GeneratePreviews fetches each linked page concurrently and scrapes
// title/description/image for the post's preview cards. Pages that fail to
// load produce a bare preview with just the URL.
func GeneratePreviews(urls []string) []dto.WebPreview {
	previews := make([]dto.WebPreview, len(urls))

	var g errgroup.Group
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			previews[i] = fetchPreview(url)
			return nil
		})
	}
	g.Wait()

	return previews
}

func fetchPreview(url string) dto.WebPreview {
	preview := dto.WebPreview{Url: url}

	res, err := http.Get(url)
	if err != nil {
		return preview
	}
	defer res.Body.Close()

	doc, err := html.Parse(res.Body)
	if err != nil {
		return preview
	}
	scrapePreview(doc, &preview)
	return preview
}

func scrapePreview(n *html.Node, preview *dto.WebPreview) {
	if n == nil || (n.Type == html.ElementNode && n.Data == "body") {
		return
	}

	if n.Type == html.ElementNode && n.Data == "title" && len(preview.Title) == 0 && n.FirstChild != nil {
		preview.Title = strings.TrimSpace(n.FirstChild.Data)
	}

	if n.Type == html.ElementNode && n.Data == "meta" {
		name, property, content := metaAttrs(n)
		switch {
		case name == "description" && len(preview.Description) == 0:
			preview.Description = content
		case property == "og:title" && len(preview.Title) == 0:
			preview.Title = content
		case property == "og:image" && len(content) > 0:
			preview.PreviewImage = content
		case property == "og:description" && len(preview.Description) == 0:
			preview.Description = content
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		scrapePreview(c, preview)
	}
}

func metaAttrs(n *html.Node) (name, property, content string) {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "name":
			name = attr.Val
		case "property":
			property = attr.Val
		case "content":
			content = strings.TrimSpace(attr.Val)
		}
	}
	return
}
