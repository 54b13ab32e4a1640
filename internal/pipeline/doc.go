// Package pipeline sequences one scaffold run: probe the Angular CLI,
// collect the project parameters, generate the workspace, apply the Tailwind
// changes and verify the result with a build.
//
// Stages run in a single goroutine. Each stage advances the controller only
// on success; the first failure moves it to the terminal aborted state and is
// returned wrapped in a *StageError. Nothing created by earlier stages is
// rolled back.
package pipeline
