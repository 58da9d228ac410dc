// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Half-block texture preview, per-body texture caching, PNG export
// 0.1.0 - Initial release: catalog browser, surface synthesis, headless list mode
