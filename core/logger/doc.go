// Package logger provides a structured logging facility based on Zap.
//
// The console encoding is the default since serve-web is a local CLI tool;
// json is available for machine consumption.
//
// # Access Logs
//
// Per-request access logging is off by default. Requests returns a no-op
// logger in that case, so the access log middleware can be wired
// unconditionally without producing output.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber
// context and attaches it to the log entry.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Serving", zap.String("root", root))
package logger
