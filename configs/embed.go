// Package configs provides embedded configuration templates for scriptlog.
//
// Templates are embedded at build time so `scriptlog config init` works from
// any installation without the source tree.
//
// Configuration hierarchy (see internal/config Load()):
//  1. Hardcoded defaults (internal/config NewConfig())
//  2. User config (~/.config/scriptlog/config.yaml)
//  3. Project config (.scriptlog.yaml)
//  4. Environment variables (SCRIPTLOG_*)
//  5. Command-line flags
package configs

import _ "embed"

// UserConfigTemplate is written by `scriptlog config init` to
// ~/.config/scriptlog/config.yaml. Settings shared by every script on the machine.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string

// ProjectConfigTemplate is written by `scriptlog config init --project` to
// .scriptlog.yaml in the working directory.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
