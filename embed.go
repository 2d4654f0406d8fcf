package notebook

import "embed"

// EmbeddedAssets contains static assets shipped with the app:
// notebook.css, logo.svg and admin.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
