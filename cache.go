package notebook

import (
	"database/sql"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// snapshot is one load of the published posts, indexed for the page
// handlers. It is never mutated after it is built.
type snapshot struct {
	posts    []BlogPost
	bySlug   map[string]BlogPost
	bySeries map[string][]BlogPost
	tags     []string
	loadedAt time.Time
}

func newSnapshot(posts []BlogPost, tags []string) *snapshot {
	s := &snapshot{
		posts:    posts,
		bySlug:   make(map[string]BlogPost, len(posts)),
		bySeries: make(map[string][]BlogPost),
		tags:     tags,
		loadedAt: time.Now(),
	}
	for _, p := range posts {
		s.bySlug[p.Slug] = p
		s.bySeries[p.Series] = append(s.bySeries[p.Series], p)
	}
	return s
}

// PostCache keeps the published posts in memory and reloads them from the
// store once ttl has passed or after Invalidate.
type PostCache struct {
	store *Store
	ttl   time.Duration

	mu   sync.RWMutex
	snap *snapshot
}

// NewPostCache creates a PostCache backed by s.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) fresh() bool {
	return c.snap != nil && time.Since(c.snap.loadedAt) < c.ttl
}

// Invalidate drops the current snapshot. Admin writes call it.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

func (c *PostCache) current() (*snapshot, error) {
	c.mu.RLock()
	if c.fresh() {
		s := c.snap
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fresh() {
		return c.snap, nil
	}
	posts, err := c.store.ListPosts("")
	if err != nil {
		return nil, err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return nil, err
	}
	c.snap = newSnapshot(posts, tags)
	return c.snap, nil
}

// ListPosts returns published posts, filtered by tag when tag is set.
func (c *PostCache) ListPosts(tag string) ([]BlogPost, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return s.posts, nil
	}
	return FilterByTag(s.posts, tag), nil
}

// ListSeries returns published posts of one series; "" selects regular posts.
func (c *PostCache) ListSeries(series string) ([]BlogPost, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	return s.bySeries[series], nil
}

// ListTags returns the tags of published posts, lowercased and sorted.
func (c *PostCache) ListTags() ([]string, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	return s.tags, nil
}

// GetPost looks up a published post by slug.
func (c *PostCache) GetPost(slug string) (BlogPost, error) {
	s, err := c.current()
	if err != nil {
		return BlogPost{}, err
	}
	p, ok := s.bySlug[slug]
	if !ok {
		return BlogPost{}, ErrNotFound
	}
	return p, nil
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
