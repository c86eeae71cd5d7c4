// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Caller-supplied overrides (typically parsed CLI flags)
//  2. Environment variables (prefixed with UTILKIT_)
//  3. JSON config file (path taken from UTILKIT_CONFIG)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
