package notebook

import (
	"errors"
	"testing"
	"time"
)

func TestPostCacheServesUntilInvalidated(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s, BlogPost{Slug: "a", Title: "A", Date: "2024-01-01", Tags: []string{"go"}, Published: true})
	c := NewPostCache(s, time.Hour)

	posts, err := c.ListPosts("")
	if err != nil || len(posts) != 1 {
		t.Fatalf("ListPosts = %d, %v", len(posts), err)
	}

	savePosts(t, s, BlogPost{Slug: "b", Title: "B", Date: "2024-01-02", Published: true})
	posts, _ = c.ListPosts("")
	if len(posts) != 1 {
		t.Errorf("cache reloaded before invalidation: %d posts", len(posts))
	}

	c.Invalidate()
	posts, _ = c.ListPosts("")
	if len(posts) != 2 {
		t.Errorf("after Invalidate got %d posts, want 2", len(posts))
	}
}

func TestPostCacheExpires(t *testing.T) {
	s := newTestStore(t)
	c := NewPostCache(s, 50*time.Millisecond)
	if posts, _ := c.ListPosts(""); len(posts) != 0 {
		t.Fatalf("expected empty store")
	}
	savePosts(t, s, BlogPost{Slug: "a", Title: "A", Date: "2024-01-01", Published: true})
	time.Sleep(80 * time.Millisecond)
	if posts, _ := c.ListPosts(""); len(posts) != 1 {
		t.Errorf("expected reload after TTL, got %d posts", len(posts))
	}
}

func TestPostCacheQueries(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s,
		BlogPost{Slug: "a", Title: "A", Date: "2024-01-01", Tags: []string{"Go"}, Published: true},
		BlogPost{Slug: "b", Title: "B", Date: "2024-01-02", Series: "startup-notebook", Published: true},
	)
	c := NewPostCache(s, time.Hour)

	if got, _ := c.ListPosts("go"); len(got) != 1 || got[0].Slug != "a" {
		t.Errorf("ListPosts(go) = %+v", got)
	}
	if got, _ := c.ListSeries("startup-notebook"); len(got) != 1 || got[0].Slug != "b" {
		t.Errorf("ListSeries = %+v", got)
	}
	if got, _ := c.ListTags(); len(got) != 1 || got[0] != "go" {
		t.Errorf("ListTags = %v", got)
	}
	if _, err := c.GetPost("b"); err != nil {
		t.Errorf("GetPost(b) = %v", err)
	}
	if _, err := c.GetPost("zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPost(zzz) err = %v, want ErrNotFound", err)
	}
}

func TestPostCacheKeepsEmptySite(t *testing.T) {
	s := newTestStore(t)
	c := NewPostCache(s, time.Hour)
	if posts, err := c.ListSeries(""); err != nil || len(posts) != 0 {
		t.Fatalf("ListSeries on empty store = %v, %v", posts, err)
	}
	savePosts(t, s, BlogPost{Slug: "late", Title: "Late", Date: "2024-01-01", Published: true})
	if _, err := c.GetPost("late"); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty snapshot was reloaded before ttl: err = %v", err)
	}
}
