// Package project holds the parameters collected for a new Angular project
// and the handle to the generated project root. Parameters are immutable once
// built; the handle resolves the few files the scaffolder touches.
package project
