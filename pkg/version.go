// Package gntaxobox resolves Wikipedia taxobox templates into taxonomic
// records.
package gntaxobox

var (
	// Version of GNtaxobox.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
