// Package flakeset provides a concurrent-safe registry of named
// generators.
//
// Multi-tenant deployments typically mint from one generator per
// logical identity (tenant, shard, worker class). The registry gives
// them a single entry point: generators are created lazily through a
// factory and looked up by name. It uses sharding to reduce lock
// contention under high-concurrency minting; shard selection hashes
// the name with murmur3.
package flakeset
