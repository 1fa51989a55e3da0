// Package ports defines the interfaces that connect the request dispatcher
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [Transport]: constructs GET and POST requests bound to a URL
//   - [RequestSender]: performs one blocking send
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with net/http
// and zerolog. Tests substitute spies.
package ports
