package notebook

import (
	"bytes"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var yamlFrontMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

type postFrontMatter struct {
	Title   string   `yaml:"title"`
	Slug    string   `yaml:"slug"`
	Date    string   `yaml:"date"`
	Tags    []string `yaml:"tags"`
	Summary string   `yaml:"summary"`
	Series  string   `yaml:"series"`
	Draft   bool     `yaml:"draft"`
}

// ImportDir reads every .md and .mdx file below dir in fsys and returns the
// posts they describe, newest first. The slug defaults to the file name and
// the series to the name of the containing subdirectory.
func ImportDir(fsys fs.FS, dir string) ([]BlogPost, error) {
	var posts []BlogPost
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".md" && ext != ".mdx" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.Wrapf(err, "cannot read post %q", p)
		}
		series := ""
		if parent := path.Dir(p); parent != path.Clean(dir) {
			series = path.Base(parent)
		}
		post, err := ParsePost(strings.TrimSuffix(path.Base(p), ext), series, data)
		if err != nil {
			return errors.Wrapf(err, "cannot parse post %q", p)
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Date > posts[j].Date })
	return posts, nil
}

// ParsePost builds a post from a markdown document with optional YAML front
// matter. slug and series are fallbacks for fields the front matter omits.
func ParsePost(slug, series string, data []byte) (BlogPost, error) {
	var fm postFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm, yamlFrontMatter)
	if err != nil {
		return BlogPost{}, errors.Wrap(err, "front matter")
	}
	if fm.Slug != "" {
		slug = fm.Slug
	}
	slug = Slugify(slug)
	if slug == "" {
		return BlogPost{}, errors.New("empty slug")
	}
	if fm.Series != "" {
		series = fm.Series
	}
	date, err := normalizeDate(fm.Date)
	if err != nil {
		return BlogPost{}, err
	}
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = slug
	}
	return BlogPost{
		Title:     title,
		Slug:      slug,
		Date:      date,
		Tags:      FilterEmpty(fm.Tags),
		Summary:   strings.TrimSpace(fm.Summary),
		Series:    series,
		Content:   strings.TrimLeft(string(body), "\r\n"),
		Link:      PostLink(slug, series),
		Published: !fm.Draft,
	}, nil
}

// normalizeDate accepts YYYY-MM-DD or RFC 3339 and returns YYYY-MM-DD.
// An empty date becomes today.
func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", errors.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return t.Format("2006-01-02"), nil
}

// ImportPosts saves posts into the store and returns how many were written.
func ImportPosts(s *Store, posts []BlogPost) (int, error) {
	for i, p := range posts {
		if err := s.SavePost(p); err != nil {
			return i, errors.Wrapf(err, "cannot save post %q", p.Slug)
		}
	}
	return len(posts), nil
}
