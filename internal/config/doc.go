// Package config loads scriptlog configuration from defaults, YAML files
// and SCRIPTLOG_* environment variables.
package config
