package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/notebook"
)

func adminPage(cfg notebook.SiteConfig, title string, body templ.Component) templ.Component {
	meta := notebook.PageMeta{Title: title}
	return Document(cfg, meta, "", component(func(h *htmlWriter) {
		h.raw(`<main class="admin panel">`)
		h.component(body)
		h.raw(`</main><script src="/public/admin.js" defer></script>`)
	}))
}

func csrfField(h *htmlWriter, token string) {
	h.raw(`<input type="hidden" name="_csrf"`)
	h.attr("value", token)
	h.raw(`>`)
}

// AdminLogin renders the password form.
func AdminLogin(cfg notebook.SiteConfig, showError bool, csrfToken string) templ.Component {
	return adminPage(cfg, "Admin", component(func(h *htmlWriter) {
		h.raw(`<h1>Admin</h1>`)
		if showError {
			h.raw(`<p class="error">Wrong password.</p>`)
		}
		h.raw(`<form method="post" action="/admin/login/">`)
		csrfField(h, csrfToken)
		h.raw(`<input type="password" name="password" autocomplete="current-password" required>`)
		h.raw(`<button type="submit">log in</button></form>`)
	}))
}

// AdminDashboard lists every post with edit and delete controls, plus an
// empty form for a new post.
func AdminDashboard(cfg notebook.SiteConfig, posts []notebook.BlogPost, message string, csrfToken string) templ.Component {
	return adminPage(cfg, "Admin", component(func(h *htmlWriter) {
		h.raw(`<h1>Posts</h1>`)
		h.raw(`<meta name="csrf-token"`)
		h.attr("content", csrfToken)
		h.raw(`>`)
		if message != "" {
			h.raw(`<p class="message">`)
			h.text(message)
			h.raw(`</p>`)
		}
		h.raw(`<form method="post" action="/admin/logout/">`)
		csrfField(h, csrfToken)
		h.raw(`<button type="submit">log out</button></form>`)
		h.raw(`<table class="posts"><tbody>`)
		for _, p := range posts {
			h.raw(`<tr><td>`)
			h.text(p.Title)
			h.raw(`</td><td>`)
			h.text(p.Date)
			h.raw(`</td><td>`)
			if p.InNotebook() {
				h.raw(`notebook`)
			}
			h.raw(`</td><td>`)
			if !p.Published {
				h.raw(`draft`)
			}
			h.raw(`</td><td><a`)
			h.attr("href", "/admin/post/"+notebook.PathEscape(p.Slug)+"/")
			h.raw(`>edit</a> <button type="button"`)
			h.attr("data-delete", "/admin/post/"+notebook.PathEscape(p.Slug)+"/")
			h.raw(`>delete</button></td></tr>`)
		}
		h.raw(`</tbody></table>`)
		h.component(AdminForm(notebook.BlogPost{Published: true}, csrfToken))
	}))
}

// AdminForm renders the create/edit form for one post.
func AdminForm(p notebook.BlogPost, csrfToken string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form class="post-form" method="post" action="/admin/save/">`)
		csrfField(h, csrfToken)
		field := func(label, name, value string) {
			h.raw(`<label>`)
			h.text(label)
			h.raw(` <input type="text"`)
			h.attr("name", name)
			h.attr("value", value)
			h.raw(`></label>`)
		}
		field("Title", "title", p.Title)
		field("Slug", "slug", p.Slug)
		field("Date", "date", p.Date)
		field("Tags", "tags", notebook.JoinTags(p.Tags))
		field("Summary", "summary", p.Summary)
		h.raw(`<label>Content <textarea name="content" rows="20">`)
		h.text(p.Content)
		h.raw(`</textarea></label>`)
		h.raw(`<label><input type="checkbox" name="notebook" value="1"`)
		if p.InNotebook() {
			h.raw(` checked`)
		}
		h.raw(`> startup notebook</label>`)
		h.raw(`<label><input type="checkbox" name="published" value="1"`)
		if p.Published {
			h.raw(` checked`)
		}
		h.raw(`> published</label>`)
		h.raw(`<button type="submit">save</button></form>`)
	})
}
