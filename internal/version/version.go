// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - YAML config, origin/center clip modes, terminal preview
// 0.2.0 - Seedable sampler, atomic catalog writes, run summary
// 0.1.0 - Initial release: Andromeda catalog generator
