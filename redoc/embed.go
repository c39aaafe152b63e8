package redoc

import "embed"

// assets holds the Redoc entry-page template. redoc.standalone.js is loaded
// from a pinned release so the bundle content never varies between runs.
//
//go:embed assets/*
var assets embed.FS
