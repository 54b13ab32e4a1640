// Package cli defines the Cobra command tree for the ngtw CLI. The root
// command runs the scaffold pipeline; each other file registers one
// subcommand. Commands parse flags, load settings and format output, and
// delegate the work to internal packages.
package cli
