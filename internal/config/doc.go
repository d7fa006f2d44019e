// Package config loads dcs-roster settings.
//
// Defaults come from struct tags, environment variables prefixed with ROSTER_
// override them, and an optional YAML file overrides both. The result is
// validated before use.
package config
