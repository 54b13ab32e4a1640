// Package config manages user-level settings stored at ~/.ngtw/config.yaml.
// Settings name the external tools the scaffolder drives (Angular CLI, npm),
// the packages installed into new projects, the verification build script,
// the supported Node.js range, and logging. A config file is validated
// against an embedded JSON Schema before it is used; NGTW_* environment
// variables override file values.
package config
