// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file and TASKR_-prefixed environment
// variables. The resulting Config is built once at start-up and passed
// explicitly to the components that need it.
package config
