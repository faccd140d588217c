// Package web holds the embedded page templates, stylesheet and the page
// metadata derived from the site's base URL.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/url"

	"github.com/cockroachdb/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Image is a social preview image.
type Image struct {
	URL    string
	Width  int
	Height int
	Type   string
}

// Meta is the head metadata shared by every page.
type Meta struct {
	Base         string
	Title        string
	Description  string
	OpenGraph    Image
	TwitterImage Image
}

// NewMeta builds the site metadata for baseURL.
func NewMeta(baseURL string) (Meta, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Meta{}, errors.Newf("invalid base url %q", baseURL)
	}
	base := u.Scheme + "://" + u.Host
	return Meta{
		Base:        base,
		Title:       "Longevity Jobs",
		Description: "Discover opportunities related to aging",
		OpenGraph: Image{
			URL:    base + "/opengraph-image.png",
			Width:  1200,
			Height: 630,
			Type:   "image/png",
		},
		TwitterImage: Image{
			URL:    base + "/twitter-image.png",
			Width:  430,
			Height: 413,
			Type:   "image/png",
		},
	}, nil
}

// Templates parses every page template with funcs available.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return t, nil
}

// Static is the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
