package notebook

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsoluteURL resolves a site-relative link such as BlogPost.Link against base.
func AbsoluteURL(base, link string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(link, "/")
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FilterByTag returns the posts carrying tag, compared case-insensitively.
func FilterByTag(posts []BlogPost, tag string) []BlogPost {
	want := normalizeTag(tag)
	var out []BlogPost
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == want {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// FilterRelatedPosts finds posts that share a tag or a series with current.
func FilterRelatedPosts(current BlogPost, posts []BlogPost) []BlogPost {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		tag := normalizeTag(t)
		if tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related []BlogPost
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		if current.Series != "" && p.Series == current.Series {
			related = append(related, p)
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[normalizeTag(t)]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// SplitTags parses a comma-separated form value into trimmed, non-empty tags.
func SplitTags(s string) []string {
	return FilterEmpty(strings.Split(s, ","))
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// SeriesTitle turns a series slug like "startup-notebook" into "Startup Notebook".
func SeriesTitle(series string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(series, "-", " "))
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}
