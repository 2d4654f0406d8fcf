package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRenderBasics(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Hello", "<h1>Hello</h1>"},
		{"some **bold** text", "<strong>bold</strong>"},
		{"some *italic* text", "<em>italic</em>"},
		{"- one\n- two", "<li>two</li>"},
	}
	for _, tt := range tests {
		got := string(Render(tt.input, Options{}))
		if !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderImageThroughProxy(t *testing.T) {
	got := string(Render("![a cat](https://x.com/cat.png)", Options{}))
	if !strings.Contains(got, "https://images.weserv.nl/?url=https://x.com/cat.png") {
		t.Fatalf("image not proxied: %q", got)
	}
	if !strings.Contains(got, "w=500") || !strings.Contains(got, "q=100") {
		t.Errorf("expected default width 500 and quality 100: %q", got)
	}
	if !strings.Contains(got, `alt="a cat"`) {
		t.Errorf("alt missing: %q", got)
	}
}

func TestRenderImageOptions(t *testing.T) {
	got := string(Render("![x](https://x.com/a.png)", Options{ImageWidth: 320, ImageQuality: 60, Unsafe: true}))
	want := `src="https://images.weserv.nl/?url=https://x.com/a.png&amp;w=320&amp;q=60&amp;af&amp;il&amp;trim"`
	if !strings.Contains(got, want) {
		t.Errorf("got %q, want it to contain %q", got, want)
	}
	if !strings.Contains(got, `srcset="`) || !strings.Contains(got, "3840w") {
		t.Errorf("srcset missing: %q", got)
	}
}

func TestRenderImageLoading(t *testing.T) {
	md := "![one](https://x.com/1.png)\n\n![two](https://x.com/2.png)"
	got := string(Render(md, Options{Unsafe: true}))
	first := strings.Index(got, `fetchpriority="high"`)
	lazy := strings.Index(got, `loading="lazy"`)
	if first < 0 || lazy < 0 || first > lazy {
		t.Errorf("expected first image high priority and second lazy: %q", got)
	}
}

func TestRenderImageRejectsUnsafeSource(t *testing.T) {
	got := string(Render("![bad](javascript:alert(1))", Options{Unsafe: true}))
	if strings.Contains(got, "<img") || strings.Contains(got, "javascript") {
		t.Errorf("unsafe image rendered: %q", got)
	}
}

func TestRenderLinks(t *testing.T) {
	ext := string(Render("[site](https://example.com)", Options{}))
	if !strings.Contains(ext, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">site</a>`) {
		t.Errorf("external link: %q", ext)
	}
	if strings.Contains(ext, "nofollow") {
		t.Errorf("external link gained nofollow: %q", ext)
	}
	unsafe := string(Render("[site](https://example.com)", Options{Unsafe: true}))
	if !strings.Contains(unsafe, `rel="noopener noreferrer"`) {
		t.Errorf("unsanitized external link: %q", unsafe)
	}
	internal := string(Render("[about](/about/)", Options{}))
	if !strings.Contains(internal, `href="/about/"`) || strings.Contains(internal, "target=") || strings.Contains(internal, "rel=") {
		t.Errorf("internal link: %q", internal)
	}
	bad := string(Render("[x](javascript:alert(1))", Options{}))
	if strings.Contains(bad, "javascript") {
		t.Errorf("javascript link kept: %q", bad)
	}
}

func TestRenderSanitizes(t *testing.T) {
	got := string(Render("hi\n\n<script>alert(1)</script>", Options{}))
	if strings.Contains(got, "<script") {
		t.Errorf("script survived sanitizing: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("plain text", Options{}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "<p>plain text</p>") {
		t.Errorf("got %q", buf.String())
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/local", "/local"},
		{"#frag", "#frag"},
		{"https://example.com", "https://example.com"},
		{"mailto:a@b.c", "mailto:a@b.c"},
		{"javascript:alert(1)", ""},
		{"relative/path", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
