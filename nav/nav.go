// Package nav classifies request paths into page categories and derives the
// navigation chrome (back-link, edit link) the layout renders around a page.
package nav

import "strings"

// Category is the kind of page being rendered. It is computed once per
// request from the path and handed to every view.
type Category int

const (
	Other Category = iota
	BlogPost
	NotebookPost // under both blog/ and startup-notebook/
	NotebookOnly // startup-notebook/ without blog/; not a blog post
)

const (
	blogMarker     = "blog/"
	notebookMarker = "startup-notebook/"

	// NotebookSeries is the series slug of startup notebook posts.
	NotebookSeries = "startup-notebook"
	// NotebookPath is the listing page of the startup notebook.
	NotebookPath = "/blog/startup-notebook"
	// BlogPath is the blog listing page.
	BlogPath = "/blog"
)

// Link is a navigation target.
type Link struct {
	URL  string
	Text string
}

// Classify maps a request path to its page category. The blog and notebook
// markers are checked independently: a path is a blog post iff it contains
// "blog/", and a notebook page iff it contains "startup-notebook/".
func Classify(path string) Category {
	blog := strings.Contains(path, blogMarker)
	notebook := strings.Contains(path, notebookMarker)
	switch {
	case blog && notebook:
		return NotebookPost
	case notebook:
		return NotebookOnly
	case blog:
		return BlogPost
	default:
		return Other
	}
}

// IsBlogPost reports whether the path contained "blog/".
func (c Category) IsBlogPost() bool {
	return c == BlogPost || c == NotebookPost
}

// IsNotebook reports whether the path contained "startup-notebook/".
func (c Category) IsNotebook() bool {
	return c == NotebookPost || c == NotebookOnly
}

// BackLink returns the parent listing the back control points to. The
// notebook link overrides the blog link.
func (c Category) BackLink() Link {
	l := Link{URL: "/", Text: "home"}
	if c.IsBlogPost() {
		l = Link{URL: BlogPath, Text: "blog"}
	}
	if c.IsNotebook() {
		l = Link{URL: NotebookPath, Text: "back"}
	}
	return l
}

func (c Category) String() string {
	switch c {
	case BlogPost:
		return "blog-post"
	case NotebookPost:
		return "notebook-post"
	case NotebookOnly:
		return "notebook-only"
	default:
		return "other"
	}
}

// EditURL builds the GitHub source link for a post. id is used as both the
// account and the repository name.
func EditURL(id, slug string) string {
	return "https://github.com/" + id + "/" + id + "/tree/master/blog/" + slug + ".mdx"
}

// ShowEditLink reports whether the edit link replaces the header spacer.
func ShowEditLink(c Category, hasPost bool) bool {
	return c.IsBlogPost() && hasPost
}
