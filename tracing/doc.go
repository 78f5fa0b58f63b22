// Package tracing wraps OpenTelemetry so that pack loading and graph editing
// can be traced without every package importing the SDK directly.
package tracing
