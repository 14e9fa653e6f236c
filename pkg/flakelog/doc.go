// Package flakelog provides structured logging for Flakely.
//
// It wraps the standard library log/slog to provide structured JSON
// logging with automatic redaction of secret material. Generator
// secrets must never reach a log sink; the handler redacts any
// attribute whose key suggests keying material.
//
// Features:
//   - JSON structured logging (default), text handler available
//   - Automatic redaction of sensitive fields (secret, key, ...)
//   - Dynamic log level adjustment
//   - A no-op logger for library callers that do not want output
package flakelog
