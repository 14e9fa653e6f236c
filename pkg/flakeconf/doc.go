// Package flakeconf loads generator configuration.
//
// It uses Koanf for flexible configuration loading from multiple
// sources with priority: Env > File > Default. A loaded Config is
// turned into flake options with Options, or directly into a
// generator with NewGenerator.
//
// The core generator itself reads no environment and no files; this
// package is the opt-in bridge for deployments that configure device
// and process markers and the shared secret externally. Secrets can be
// given inline, as a file path, or sealed with secretseal.
package flakeconf
