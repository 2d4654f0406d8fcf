package notebook

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test_notebook.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func savePosts(t *testing.T, s *Store, posts ...BlogPost) {
	t.Helper()
	for _, p := range posts {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost(%q) failed: %v", p.Slug, err)
		}
	}
}

func TestSaveAndGetPost(t *testing.T) {
	s := newTestStore(t)

	post := BlogPost{
		Slug:      "test-post",
		Title:     "Test Post",
		Date:      "2024-01-15",
		Tags:      []string{"Go", "testing"},
		Summary:   "A test post summary",
		Content:   "# Test Content\n\nThis is test content.",
		Published: true,
	}
	savePosts(t, s, post)

	got, err := s.GetPost("test-post")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != post.Title || got.Date != post.Date || got.Summary != post.Summary || got.Content != post.Content {
		t.Errorf("GetPost = %+v, want fields of %+v", got, post)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" || got.Tags[1] != "testing" {
		t.Errorf("Tags = %v, want [go testing]", got.Tags)
	}
	if got.Link != "/blog/test-post/" {
		t.Errorf("Link = %q, want /blog/test-post/", got.Link)
	}
}

func TestSaveNotebookPost(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s, BlogPost{Slug: "day-one", Title: "Day One", Date: "2024-01-01", Series: "startup-notebook", Published: true})

	got, err := s.GetPost("day-one")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if !got.InNotebook() {
		t.Errorf("Series = %q, want startup-notebook", got.Series)
	}
	if got.Link != "/blog/startup-notebook/day-one/" {
		t.Errorf("Link = %q", got.Link)
	}
}

func TestSavePostUpdate(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s,
		BlogPost{Slug: "p", Title: "Original", Date: "2024-01-01", Published: true},
		BlogPost{Slug: "p", Title: "Updated", Date: "2024-01-02", Published: true},
	)

	got, err := s.GetPost("p")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("Title = %q, want Updated", got.Title)
	}
	all, _ := s.ListAllPosts()
	if len(all) != 1 {
		t.Errorf("ListAllPosts count = %d, want 1", len(all))
	}
}

func TestGetPostNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetPost("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPost err = %v, want ErrNotFound", err)
	}
}

func TestGetPostUnpublished(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s, BlogPost{Slug: "draft", Title: "Draft", Date: "2024-01-01", Published: false})

	if _, err := s.GetPost("draft"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPost on draft err = %v, want ErrNotFound", err)
	}
	got, err := s.GetPostAny("draft")
	if err != nil {
		t.Fatalf("GetPostAny failed: %v", err)
	}
	if got.Published {
		t.Error("GetPostAny returned draft as published")
	}
}

func TestListPosts(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s,
		BlogPost{Slug: "old", Title: "Old", Date: "2023-01-01", Tags: []string{"go"}, Published: true},
		BlogPost{Slug: "new", Title: "New", Date: "2024-06-01", Tags: []string{"Web"}, Published: true},
		BlogPost{Slug: "nb", Title: "NB", Date: "2024-03-01", Series: "startup-notebook", Published: true},
		BlogPost{Slug: "draft", Title: "Draft", Date: "2024-07-01", Published: false},
	)

	got, err := s.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListPosts count = %d, want 3", len(got))
	}
	if got[0].Slug != "new" || got[1].Slug != "nb" || got[2].Slug != "old" {
		t.Errorf("order = %s, %s, %s", got[0].Slug, got[1].Slug, got[2].Slug)
	}

	byTag, err := s.ListPosts(" WEB ")
	if err != nil {
		t.Fatalf("ListPosts(tag) failed: %v", err)
	}
	if len(byTag) != 1 || byTag[0].Slug != "new" {
		t.Errorf("ListPosts(web) = %+v", byTag)
	}
}

func TestListSeries(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s,
		BlogPost{Slug: "a", Title: "A", Date: "2024-01-01", Published: true},
		BlogPost{Slug: "b", Title: "B", Date: "2024-01-02", Series: "startup-notebook", Published: true},
		BlogPost{Slug: "c", Title: "C", Date: "2024-01-03", Series: "startup-notebook", Published: false},
	)

	nb, err := s.ListSeries("startup-notebook")
	if err != nil {
		t.Fatalf("ListSeries failed: %v", err)
	}
	if len(nb) != 1 || nb[0].Slug != "b" {
		t.Errorf("ListSeries(notebook) = %+v", nb)
	}
	regular, err := s.ListSeries("")
	if err != nil {
		t.Fatalf("ListSeries failed: %v", err)
	}
	if len(regular) != 1 || regular[0].Slug != "a" {
		t.Errorf("ListSeries(\"\") = %+v", regular)
	}
}

func TestListTags(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s,
		BlogPost{Slug: "p1", Title: "P1", Date: "2024-01-01", Tags: []string{"Go", "Web"}, Published: true},
		BlogPost{Slug: "p2", Title: "P2", Date: "2024-01-02", Tags: []string{"go", "api"}, Published: true},
		BlogPost{Slug: "p3", Title: "P3", Date: "2024-01-03", Tags: []string{"rust"}, Published: false},
	)

	got, err := s.ListTags()
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	expected := []string{"api", "go", "web"}
	if len(got) != len(expected) {
		t.Fatalf("ListTags = %v, want %v", got, expected)
	}
	for i, tag := range expected {
		if got[i] != tag {
			t.Errorf("ListTags[%d] = %q, want %q", i, got[i], tag)
		}
	}
}

func TestDeletePost(t *testing.T) {
	s := newTestStore(t)
	savePosts(t, s, BlogPost{Slug: "to-delete", Title: "To Delete", Date: "2024-01-01", Published: true})

	if err := s.DeletePost("to-delete"); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if _, err := s.GetPostAny("to-delete"); !errors.Is(err, ErrNotFound) {
		t.Errorf("post still present after delete: %v", err)
	}
	if err := s.DeletePost("never-existed"); err != nil {
		t.Errorf("DeletePost on missing slug returned %v", err)
	}
}

func TestReopenStoreKeepsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	savePosts(t, s, BlogPost{Slug: "kept", Title: "Kept", Date: "2024-01-01", Series: "startup-notebook", Published: true})
	s.Close()

	s2, err := NewStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()
	got, err := s2.GetPost("kept")
	if err != nil || got.Series != "startup-notebook" {
		t.Errorf("GetPost after reopen = %+v, %v", got, err)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{",go,web,", []string{"go", "web"}},
		{",,", nil},
		{"", nil},
		{"single", []string{"single"}},
	}
	for _, tt := range tests {
		got := ParseTags(tt.input)
		if len(got) != len(tt.expected) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("ParseTags(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.expected[i])
			}
		}
	}
}
