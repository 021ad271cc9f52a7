// Package request performs one HTTP request per call behind a synchronous
// facade.
//
// Each call to Do (or a verb helper) creates a session scoped to that call,
// runs the transfer on its own goroutine, blocks until the transfer finishes
// or the context is done, and closes the session before returning. Callers
// never see in-progress state and nothing is shared between calls.
//
// Failures are passed through: whatever the underlying transport reports
// (connection refused, DNS failure, deadline exceeded) is returned as-is,
// with no retry or classification.
package request
