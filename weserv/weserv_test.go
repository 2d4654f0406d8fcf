package weserv

import (
	"strings"
	"testing"
)

func TestLoader(t *testing.T) {
	tests := []struct {
		name string
		in   LoaderProps
		want string
	}{
		{
			name: "default quality",
			in:   LoaderProps{Src: "https://x.com/a.png", Width: 500},
			want: "https://images.weserv.nl/?url=https://x.com/a.png&w=500&q=69&af&il&trim",
		},
		{
			name: "explicit quality",
			in:   LoaderProps{Src: "https://x.com/a.png", Width: 500, Quality: 80},
			want: "https://images.weserv.nl/?url=https://x.com/a.png&w=500&q=80&af&il&trim",
		},
		{
			name: "source is not escaped",
			in:   LoaderProps{Src: "https://x.com/a.png?v=1&s=2", Width: 10, Quality: 100},
			want: "https://images.weserv.nl/?url=https://x.com/a.png?v=1&s=2&w=10&q=100&af&il&trim",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Loader(tt.in); got != tt.want {
				t.Errorf("Loader() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSrcSet(t *testing.T) {
	got := SrcSet("https://x.com/a.png", []int{640, 1080}, 100)
	want := "https://images.weserv.nl/?url=https://x.com/a.png&w=640&q=100&af&il&trim 640w, " +
		"https://images.weserv.nl/?url=https://x.com/a.png&w=1080&q=100&af&il&trim 1080w"
	if got != want {
		t.Errorf("SrcSet() = %q, want %q", got, want)
	}
}

func TestSrcSetDefaultsToDeviceSizes(t *testing.T) {
	got := SrcSet("/a.png", nil, 0)
	if n := strings.Count(got, ", ") + 1; n != len(DeviceSizes) {
		t.Fatalf("got %d candidates, want %d", n, len(DeviceSizes))
	}
	if !strings.HasSuffix(got, "&q=69&af&il&trim 3840w") {
		t.Errorf("last candidate = %q", got)
	}
}
