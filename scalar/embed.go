package scalar

import "embed"

// assets holds the Scalar API reference entry-page template.
//
//go:embed assets/*
var assets embed.FS
