// Package toolchain runs the external tools the scaffolder delegates to: the
// Angular CLI for probing and project generation, and npm for dependency
// installation and the verification build. Every tool is a blocking
// subprocess whose output is streamed to the terminal and whose success is
// judged by exit code alone.
package toolchain
