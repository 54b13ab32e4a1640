// Package scaffold patches a freshly generated Angular project for Tailwind
// CSS. After the Tailwind packages are installed it writes the PostCSS plugin
// configuration, prepends the Tailwind import to the global stylesheet, and
// drops a CLAUDE.md guidance file at the project root. The payloads are
// embedded and written verbatim.
package scaffold
