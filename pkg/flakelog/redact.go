package flakelog

import (
	"log/slog"
	"strings"
)

// Sensitive key patterns that should be redacted. A generator's shared
// secret and any sealing key must never appear in log output.
var sensitiveKeyPatterns = []string{
	"secret",
	"password",
	"key",
	"credential",
	"seal",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive checks if an attribute contains sensitive data
// and redacts it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	if IsSensitiveKey(a.Key) {
		switch a.Value.Kind() {
		case slog.KindString:
			if a.Value.String() != "" {
				return slog.String(a.Key, redactedValue)
			}
		case slog.KindAny, slog.KindGroup:
			return slog.String(a.Key, redactedValue)
		}
	}

	// Handle nested groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
