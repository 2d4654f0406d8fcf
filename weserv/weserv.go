// Package weserv builds image URLs that route through the images.weserv.nl
// resizing proxy.
package weserv

import (
	"strconv"
	"strings"
)

// DefaultQuality is used when a caller leaves Quality unset.
const DefaultQuality = 69

const endpoint = "https://images.weserv.nl/"

// DeviceSizes are the widths offered in a responsive srcset.
var DeviceSizes = []int{640, 750, 828, 1080, 1200, 1920, 2048, 3840}

// LoaderProps describes one requested rendition of an image.
type LoaderProps struct {
	Src     string
	Width   int
	Quality int // 0 means DefaultQuality
}

// Loader returns the proxied URL for p. Src is inserted verbatim: a source
// containing '&' or '#' yields a URL the proxy will split differently.
func Loader(p LoaderProps) string {
	q := p.Quality
	if q == 0 {
		q = DefaultQuality
	}
	return endpoint + "?url=" + p.Src +
		"&w=" + strconv.Itoa(p.Width) +
		"&q=" + strconv.Itoa(q) +
		"&af&il&trim"
}

// SrcSet returns a srcset attribute value with one proxied candidate per width.
// A nil or empty widths falls back to DeviceSizes.
func SrcSet(src string, widths []int, quality int) string {
	if len(widths) == 0 {
		widths = DeviceSizes
	}
	parts := make([]string, 0, len(widths))
	for _, w := range widths {
		parts = append(parts, Loader(LoaderProps{Src: src, Width: w, Quality: quality})+" "+strconv.Itoa(w)+"w")
	}
	return strings.Join(parts, ", ")
}
