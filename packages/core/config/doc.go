// Package config handles configuration loading for the areq CLI.
//
// It provides functionality for:
//   - Loading defaults from .areq.yaml or areq.yaml files
//   - Default values matching the library defaults
//   - Resolving a bearer token from an environment variable
//
// The request library itself takes no configuration; this package only
// feeds CLI flags their defaults.
package config
