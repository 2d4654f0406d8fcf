package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/notebook"
	"github.com/eringen/notebook/nav"
)

// PostHead renders the title block of a post.
func PostHead(p notebook.BlogPost) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header class="post-head">`)
		h.raw(`<h1>`)
		h.text(p.Title)
		h.raw(`</h1><div class="meta">`)
		if p.Date != "" {
			h.raw(`<time`)
			h.attr("datetime", p.Date)
			h.raw(`>`)
			h.text(FormatDate(p.Date))
			h.raw(`</time>`)
		}
		if p.InNotebook() {
			h.raw(` · <a class="series"`)
			h.attr("href", nav.NotebookPath)
			h.raw(`>`)
			h.text(notebook.SeriesTitle(p.Series))
			h.raw(`</a>`)
		}
		h.raw(`</div>`)
		if p.Summary != "" {
			h.raw(`<p class="summary">`)
			h.text(p.Summary)
			h.raw(`</p>`)
		}
		if len(p.Tags) > 0 {
			h.raw(`<div class="tags">`)
			for _, t := range p.Tags {
				h.raw(`<span class="tag">`)
				h.text(t)
				h.raw(`</span>`)
			}
			h.raw(`</div>`)
		}
		h.raw(`</header>`)
	})
}
