package pages

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	publicGroup = "public"
	viewRoute   = "view"
	viewPath    = "/view/:slug"
)

// URLResolver builds public page URLs with a go-urlkit route manager.
type URLResolver struct {
	manager *urlkit.RouteManager
}

// NewURLResolver registers the public view route under baseURL. An empty
// baseURL yields host-relative URLs.
func NewURLResolver(baseURL string) *URLResolver {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    publicGroup,
				BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
				Paths: map[string]string{
					viewRoute: viewPath,
				},
			},
		},
	})
	return &URLResolver{manager: manager}
}

// Resolve returns the public URL of the page with slug.
func (r *URLResolver) Resolve(slug string) (url string, err error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", ErrSlugRequired
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pages: build view url: %v", rec)
		}
	}()
	return r.manager.Group(publicGroup).Builder(viewRoute).WithParam("slug", slug).Build()
}

// PublicURL resolves the URL of page, or "" when it is not published.
func (r *URLResolver) PublicURL(page *Page) string {
	if r == nil || page == nil || page.Status != StatusPublished {
		return ""
	}
	url, err := r.Resolve(page.Slug)
	if err != nil {
		return ""
	}
	return url
}
