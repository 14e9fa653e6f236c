// Package flakemetric provides Prometheus metrics for Flakely
// generators.
//
// It implements the flake.Recorder interface on top of
// prometheus/client_golang, exposing mint and validation rates and the
// two sequencing anomalies (counter wraps, clock regressions) worth
// alerting on.
package flakemetric
