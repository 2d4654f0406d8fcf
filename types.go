package notebook

import "github.com/eringen/notebook/nav"

// BlogPost is the core content type stored in SQLite and rendered by templates.
type BlogPost struct {
	Title     string
	Date      string
	Tags      []string
	Summary   string
	Link      string
	Slug      string
	Series    string // "" for regular posts, nav.NotebookSeries for notebook entries
	Content   string
	Published bool
}

// InNotebook reports whether the post belongs to the startup notebook.
func (p BlogPost) InNotebook() bool {
	return p.Series == nav.NotebookSeries
}

// PostLink returns the canonical path of a post with the given slug and series.
func PostLink(slug, series string) string {
	if series == nav.NotebookSeries {
		return nav.NotebookPath + "/" + slug + "/"
	}
	return nav.BlogPath + "/" + slug + "/"
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
