package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/notebook"
	"github.com/eringen/notebook/nav"
)

const logoSVG = `<svg class="logo fill-current text-white w-5 h-5 cursor-pointer" viewBox="0 0 80 80" aria-hidden="true">` +
	`<polygon points="63.33 46.67 40 0 16.67 46.67 63.33 46.67"></polygon>` +
	`<polygon points="13.33 53.33 0 80 80 80 66.67 53.33 13.33 53.33"></polygon></svg>`

// Layout renders the navigation chrome around a page: back-link, home logo,
// edit link (or a spacer), the post header when post is set, children, and
// the footer. page is the category of the requested path.
func Layout(cfg notebook.SiteConfig, page nav.Category, post *notebook.BlogPost, children templ.Component) templ.Component {
	back := page.BackLink()
	return component(func(h *htmlWriter) {
		h.raw(`<div class="shell flex flex-col justify-between h-full min-h-screen overflow-x-hidden lg:m-auto lg:max-w-5xl xl:max-w-6xl"`)
		h.attr("data-page", page.String())
		h.raw(`>`)
		h.raw(`<div class="z-10 flex flex-col text-black dark:text-white">`)

		h.raw(`<nav class="chrome px-5 h-16 flex justify-between items-center">`)
		h.raw(`<a class="back text-white flex items-center cursor-w-resize"`)
		h.attr("href", back.URL)
		h.raw(`><span class="glyph text-2xl pr-2">☜</span> `)
		h.text(back.Text)
		h.raw(`</a>`)

		h.raw(`<a class="home-logo" href="/" aria-label="home">`)
		h.raw(logoSVG)
		h.raw(`</a>`)

		if nav.ShowEditLink(page, post != nil) {
			h.raw(`<a class="edit-link no-underline"`)
			h.attr("href", nav.EditURL(cfg.GitHubID, slugOf(post)))
			h.raw(` target="_blank" rel="noopener noreferrer">`)
			h.raw(`<div class="edit text-white flex items-center cursor-alias">edit <div class="glyph text-2xl pl-2">✍︎</div></div></a>`)
		} else {
			h.raw(`<div class="w-16"></div>`)
		}
		h.raw(`</nav>`)

		h.raw(`<main class="panel z-10 px-5 flex flex-col">`)
		if post != nil {
			h.component(PostHead(*post))
		}
		h.component(children)
		h.raw(`</main></div>`)

		h.component(Footer(cfg, page.IsBlogPost()))
		h.raw(`</div>`)
	})
}

func slugOf(p *notebook.BlogPost) string {
	if p == nil {
		return ""
	}
	return p.Slug
}
