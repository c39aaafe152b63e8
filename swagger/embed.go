package swagger

import "embed"

// assets holds the Swagger UI entry-page template. The heavy UI scripts are
// loaded from a pinned swagger-ui-dist release so the generated bundle stays
// small and byte-stable across runs.
//
//go:embed assets/*
var assets embed.FS
