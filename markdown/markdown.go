// Package markdown renders post bodies to HTML as a templ component. Images
// are routed through the weserv proxy and the output is sanitized.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	bm "github.com/microcosm-cc/bluemonday"
	bf "github.com/russross/blackfriday"

	"github.com/eringen/notebook/weserv"
)

const (
	extensions = bf.EXTENSION_NO_INTRA_EMPHASIS |
		bf.EXTENSION_TABLES |
		bf.EXTENSION_FENCED_CODE |
		bf.EXTENSION_AUTOLINK |
		bf.EXTENSION_STRIKETHROUGH |
		bf.EXTENSION_SPACE_HEADERS |
		bf.EXTENSION_HEADER_IDS

	htmlFlags = bf.HTML_USE_SMARTYPANTS |
		bf.HTML_SMARTYPANTS_FRACTIONS |
		bf.HTML_SMARTYPANTS_LATEX_DASHES
)

// Options control how a post body is rendered.
type Options struct {
	ImageWidth   int  // width requested from the proxy for the src candidate (default 500)
	ImageQuality int  // proxy quality (default 100)
	Unsafe       bool // skip sanitizing, for trusted content only
}

func (o *Options) setDefaults() {
	if o.ImageWidth == 0 {
		o.ImageWidth = 500
	}
	if o.ImageQuality == 0 {
		o.ImageQuality = 100
	}
}

var policy = newPolicy()

func newPolicy() *bm.Policy {
	p := bm.UGCPolicy()
	p.AllowAttrs("srcset", "sizes", "loading", "decoding", "fetchpriority").OnElements("img")
	// External links carry exactly rel="noopener noreferrer", no nofollow.
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noopener noreferrer$`)).OnElements("a")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
	return p
}

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := w.Write(Render(md, opts))
		return err
	})
}

// Render converts md to HTML.
func Render(md string, opts Options) []byte {
	opts.setDefaults()
	r := &renderer{
		Renderer: bf.HtmlRenderer(htmlFlags, "", ""),
		opts:     opts,
	}
	out := bf.Markdown([]byte(md), r, extensions)
	if !opts.Unsafe {
		out = policy.SanitizeBytes(out)
	}
	return out
}

// renderer overrides image and link output of the stock HTML renderer.
type renderer struct {
	bf.Renderer
	opts       Options
	imageCount int
}

func (r *renderer) Image(out *bytes.Buffer, link []byte, title []byte, alt []byte) {
	if title == nil {
		title = alt
	}
	if alt == nil {
		alt = title
	}
	src := SafeURL(string(link))
	if src == "" {
		out.WriteString(html.EscapeString(string(alt)))
		return
	}
	r.imageCount++
	load := `loading="lazy"`
	if r.imageCount == 1 {
		load = `fetchpriority="high"`
	}

	out.WriteString(`<img `)
	out.WriteString(load)
	out.WriteString(` decoding="async" width="`)
	out.WriteString(strconv.Itoa(r.opts.ImageWidth))
	out.WriteString(`" alt="`)
	out.WriteString(html.EscapeString(string(alt)))
	if len(title) > 0 {
		out.WriteString(`" title="`)
		out.WriteString(html.EscapeString(string(title)))
	}
	out.WriteString(`" src="`)
	out.WriteString(html.EscapeString(weserv.Loader(weserv.LoaderProps{
		Src:     src,
		Width:   r.opts.ImageWidth,
		Quality: r.opts.ImageQuality,
	})))
	out.WriteString(`" srcset="`)
	out.WriteString(html.EscapeString(weserv.SrcSet(src, nil, r.opts.ImageQuality)))
	out.WriteString(`" sizes="100vw">`)
}

func (r *renderer) Link(out *bytes.Buffer, link []byte, title []byte, content []byte) {
	href := SafeURL(string(link))
	if href == "" {
		out.Write(content)
		return
	}
	out.WriteString(`<a href="`)
	out.WriteString(html.EscapeString(href))
	out.WriteString(`"`)
	if len(title) > 0 {
		out.WriteString(` title="`)
		out.WriteString(html.EscapeString(string(title)))
		out.WriteString(`"`)
	}
	if IsExternal(href) {
		out.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	out.WriteString(`>`)
	out.Write(content)
	out.WriteString(`</a>`)
}

// IsExternal reports whether href leaves the site.
func IsExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// SafeURL returns raw when it is a relative path, fragment or an allowed
// scheme, and "" otherwise. The result is not HTML-escaped.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return val
	default:
		return ""
	}
}
