// Package output renders a response for the CLI.
//
// Two formatters are provided: a colored console formatter for humans and
// a JSON formatter for scripting.
package output
