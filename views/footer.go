package views

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/notebook"
)

// Footer renders the site footer. The newsletter embed appears only when
// showSubscribe is set and a SubscribeURL is configured.
func Footer(cfg notebook.SiteConfig, showSubscribe bool) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<footer class="site-footer"`)
		h.attr("data-subscribe", strconv.FormatBool(showSubscribe))
		h.raw(`>`)
		if showSubscribe && cfg.SubscribeURL != "" {
			h.raw(`<div class="subscribe"><iframe title="subscribe" loading="lazy"`)
			h.attr("src", cfg.SubscribeURL)
			h.raw(`></iframe></div>`)
		}
		h.raw(`<div class="links"><a href="/feed.xml">rss</a>`)
		if cfg.GitHubID != "" {
			h.raw(` · <a rel="noopener noreferrer" target="_blank"`)
			h.attr("href", "https://github.com/"+cfg.GitHubID)
			h.raw(`>github</a>`)
		}
		h.raw(`</div><p class="copyright">© `)
		h.text(strconv.Itoa(time.Now().Year()) + " " + footerName(cfg))
		h.raw(`</p></footer>`)
	})
}

func footerName(cfg notebook.SiteConfig) string {
	if cfg.Author != "" {
		return cfg.Author
	}
	return cfg.Name
}
