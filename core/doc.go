// Package core loads, validates, and renders OpenAPI documents into static
// API-reference viewer bundles, without coupling to a particular viewer or
// web framework.
package core
