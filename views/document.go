package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/notebook"
)

// Document renders the html shell: head metadata, stylesheet, feed link and
// an optional JSON-LD block around body.
func Document(cfg notebook.SiteConfig, meta notebook.PageMeta, jsonLD string, body templ.Component) templ.Component {
	title := cfg.Name
	if meta.Title != "" && meta.Title != cfg.Name {
		title = meta.Title + " | " + cfg.Name
	}
	description := meta.Description
	if description == "" {
		description = cfg.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		h.raw(`<meta name="description"`)
		h.attr("content", description)
		h.raw(`>`)
		if meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.attr("href", meta.URL)
			h.raw(`><meta property="og:url"`)
			h.attr("content", meta.URL)
			h.raw(`>`)
		}
		h.raw(`<meta property="og:title"`)
		h.attr("content", title)
		h.raw(`><meta property="og:type"`)
		h.attr("content", ogType)
		h.raw(`><meta property="og:description"`)
		h.attr("content", description)
		h.raw(`>`)
		h.raw(`<link rel="icon" href="/public/logo.svg" type="image/svg+xml">`)
		h.raw(`<link rel="stylesheet" href="/public/notebook.css">`)
		h.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
		h.attr("title", cfg.Name)
		h.raw(`>`)
		if jsonLD != "" {
			// json.Marshal escapes <, > and &, so the block cannot close the script tag.
			h.raw(`<script type="application/ld+json">`)
			h.raw(jsonLD)
			h.raw(`</script>`)
		}
		h.raw(`</head><body class="bg-black">`)
		h.component(body)
		h.raw(`</body></html>`)
	})
}
