// Package domain contains the core value types and errors for hdrs.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (HTTP, file system, logging) and holds only the
// invocation and response model.
//
// # Types
//
//   - [Method]: the request method, restricted to GET and POST
//   - [Invocation]: the validated (method, url) pair for a single run
//   - [Response]: protocol version, status and ordered headers
//
// # Errors
//
// [UsageError] is returned for bad command-line input and is detected
// before any network activity. [TransportError] wraps any failure from the
// HTTP collaborator. [ErrInvalidMethod] marks an internal invariant
// violation and is raised with panic, never returned.
package domain
