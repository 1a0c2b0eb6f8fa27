// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - AccessLog: Logs one line per request with method, path, status and
//     duration. It writes to whatever logger it is given, which is a no-op
//     logger unless access logging is enabled.
package middleware
