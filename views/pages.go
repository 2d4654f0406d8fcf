package views

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/eringen/notebook"
	"github.com/eringen/notebook/markdown"
	"github.com/eringen/notebook/nav"
)

// Funcs returns the default view set for cfg.
func Funcs(cfg notebook.SiteConfig) notebook.ViewFuncs {
	cfg = cfg.Defaults()
	return notebook.ViewFuncs{
		Home: func(posts []notebook.BlogPost, activeTag string, tags []string, page nav.Category) templ.Component {
			return Home(cfg, posts, activeTag, tags, page)
		},
		BlogIndex: func(posts []notebook.BlogPost, activeTag string, tags []string, page nav.Category) templ.Component {
			return BlogIndex(cfg, posts, activeTag, tags, page)
		},
		NotebookIndex: func(posts []notebook.BlogPost, page nav.Category) templ.Component {
			return NotebookIndex(cfg, posts, page)
		},
		Post: func(post notebook.BlogPost, related []notebook.BlogPost, page nav.Category) templ.Component {
			return Post(cfg, post, related, page)
		},
		AdminLogin: func(showError bool, csrfToken string) templ.Component {
			return AdminLogin(cfg, showError, csrfToken)
		},
		AdminDashboard: func(posts []notebook.BlogPost, message string, csrfToken string) templ.Component {
			return AdminDashboard(cfg, posts, message, csrfToken)
		},
		AdminFormPartial: func(post notebook.BlogPost, csrfToken string) templ.Component {
			return AdminForm(post, csrfToken)
		},
		NotFound: func(page nav.Category) templ.Component {
			return NotFound(cfg, page)
		},
		ServerError: func() templ.Component {
			return ServerError(cfg)
		},
	}
}

// Home lists the latest posts from the blog and the notebook.
func Home(cfg notebook.SiteConfig, posts []notebook.BlogPost, activeTag string, tags []string, page nav.Category) templ.Component {
	meta := notebook.PageMeta{Title: cfg.Name, Description: cfg.Description, URL: notebook.BuildURL(cfg.URL)}
	body := component(func(h *htmlWriter) {
		h.raw(`<section class="intro"><h1>`)
		h.text(cfg.Name)
		h.raw(`</h1>`)
		if cfg.Description != "" {
			h.raw(`<p>`)
			h.text(cfg.Description)
			h.raw(`</p>`)
		}
		h.raw(`<p><a href="/blog">blog</a> · <a href="/blog/startup-notebook">startup notebook</a></p></section>`)
		h.component(tagBar("/", tags, activeTag))
		h.component(postList(posts))
	})
	return Document(cfg, meta, WebsiteJsonLD(cfg), Layout(cfg, page, nil, body))
}

// BlogIndex lists regular blog posts with a tag filter.
func BlogIndex(cfg notebook.SiteConfig, posts []notebook.BlogPost, activeTag string, tags []string, page nav.Category) templ.Component {
	meta := notebook.PageMeta{Title: "Blog", URL: notebook.AbsoluteURL(cfg.URL, nav.BlogPath)}
	body := Fragment(heading("Blog"), tagBar(nav.BlogPath, tags, activeTag), postList(posts))
	return Document(cfg, meta, "", Layout(cfg, page, nil, body))
}

// NotebookIndex lists the startup notebook entries.
func NotebookIndex(cfg notebook.SiteConfig, posts []notebook.BlogPost, page nav.Category) templ.Component {
	title := notebook.SeriesTitle(nav.NotebookSeries)
	meta := notebook.PageMeta{Title: title, URL: notebook.AbsoluteURL(cfg.URL, nav.NotebookPath)}
	return Document(cfg, meta, "", Layout(cfg, page, nil, Fragment(heading(title), postList(posts))))
}

// Post renders a single post inside the layout, followed by related posts.
func Post(cfg notebook.SiteConfig, post notebook.BlogPost, related []notebook.BlogPost, page nav.Category) templ.Component {
	meta := notebook.PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		URL:         notebook.AbsoluteURL(cfg.URL, post.Link),
		OGType:      "article",
	}
	body := component(func(h *htmlWriter) {
		h.raw(`<article class="prose">`)
		h.component(markdown.Markdown(post.Content, markdown.Options{ImageQuality: cfg.ImageQuality}))
		h.raw(`</article>`)
		if len(related) > 0 {
			h.raw(`<aside class="related"><h2>Related</h2>`)
			h.component(postList(related))
			h.raw(`</aside>`)
		}
	})
	return Document(cfg, meta, BlogPostingJsonLD(cfg, post), Layout(cfg, page, &post, body))
}

// NotFound renders the 404 page within the chrome of the requested path.
func NotFound(cfg notebook.SiteConfig, page nav.Category) templ.Component {
	body := Fragment(heading("Not found"), Text("Nothing lives at this address."))
	return Document(cfg, notebook.PageMeta{Title: "Not found"}, "", Layout(cfg, page, nil, body))
}

// ServerError renders the 500 page.
func ServerError(cfg notebook.SiteConfig) templ.Component {
	body := Fragment(heading("Something broke"), Text("Try again in a moment."))
	return Document(cfg, notebook.PageMeta{Title: "Error"}, "", Layout(cfg, nav.Other, nil, body))
}

func heading(s string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<h1>`)
		h.text(s)
		h.raw(`</h1>`)
	})
}

func postList(posts []notebook.BlogPost) templ.Component {
	return component(func(h *htmlWriter) {
		if len(posts) == 0 {
			h.raw(`<p class="empty">No posts yet.</p>`)
			return
		}
		h.raw(`<ul class="posts">`)
		for _, p := range posts {
			h.raw(`<li><a`)
			h.attr("href", p.Link)
			h.raw(`>`)
			h.text(p.Title)
			h.raw(`</a> <time`)
			h.attr("datetime", p.Date)
			h.raw(`>`)
			h.text(FormatDate(p.Date))
			h.raw(`</time>`)
			if p.Summary != "" {
				h.raw(`<p>`)
				h.text(p.Summary)
				h.raw(`</p>`)
			}
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}

func tagBar(base string, tags []string, active string) templ.Component {
	return component(func(h *htmlWriter) {
		if len(tags) == 0 {
			return
		}
		h.raw(`<div class="tags">`)
		for _, t := range tags {
			h.raw(`<a class="tag`)
			if t == active {
				h.raw(` active`)
			}
			h.raw(`"`)
			h.attr("href", base+"?tag="+url.QueryEscape(t))
			h.raw(`>`)
			h.text(t)
			h.raw(`</a>`)
		}
		h.raw(`</div>`)
	})
}
