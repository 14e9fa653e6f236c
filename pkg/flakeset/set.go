package flakeset

import (
	"sync"

	"github.com/spaolacci/murmur3"

	"github.com/yndnr/flakely-go/pkg/flake"
)

// DefaultShardCount is the default number of shards.
const DefaultShardCount = 16

// ErrUnknownGenerator indicates a lookup for a name that was never
// registered or created.
var ErrUnknownGenerator = flake.NewError("FLK-SET-4040", "unknown generator")

// Factory builds the generator for a name on first use. The name is
// the registry key, so factories can derive per-tenant identity or
// secrets from it.
type Factory func(name string) (*flake.Generator, error)

// Set is a concurrent-safe, sharded registry of named generators.
type Set struct {
	shards    []*shard
	shardMask uint64
	factory   Factory
}

type shard struct {
	mu   sync.RWMutex
	gens map[string]*flake.Generator
}

// New creates a registry with the default shard count. A nil factory
// creates generators with default identity (random device, OS process
// id, empty secret).
func New(factory Factory) *Set {
	return NewWithShards(factory, DefaultShardCount)
}

// NewWithShards creates a registry with the specified shard count.
// shardCount must be a power of 2.
func NewWithShards(factory Factory, shardCount int) *Set {
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		shardCount = DefaultShardCount
	}
	if factory == nil {
		factory = func(string) (*flake.Generator, error) {
			return flake.New()
		}
	}

	s := &Set{
		shards:    make([]*shard, shardCount),
		shardMask: uint64(shardCount - 1),
		factory:   factory,
	}
	for i := range s.shards {
		s.shards[i] = &shard{gens: make(map[string]*flake.Generator)}
	}
	return s
}

// getShard returns the shard responsible for a name.
func (s *Set) getShard(name string) *shard {
	idx := murmur3.Sum64([]byte(name)) & s.shardMask
	return s.shards[idx]
}

// Get retrieves a generator by name without creating it.
func (s *Set) Get(name string) (*flake.Generator, bool) {
	sh := s.getShard(name)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	g, ok := sh.gens[name]
	return g, ok
}

// GetOrCreate retrieves a generator by name, building it through the
// factory on first use. Concurrent calls for the same name create at
// most one generator.
func (s *Set) GetOrCreate(name string) (*flake.Generator, error) {
	sh := s.getShard(name)

	sh.mu.RLock()
	g, ok := sh.gens[name]
	sh.mu.RUnlock()
	if ok {
		return g, nil
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	// Re-check under the write lock; another caller may have won.
	if g, ok := sh.gens[name]; ok {
		return g, nil
	}
	g, err := s.factory(name)
	if err != nil {
		return nil, err
	}
	sh.gens[name] = g
	return g, nil
}

// Generate mints a token from the named generator, creating it on
// first use.
func (s *Set) Generate(name string, identifier uint64) ([]byte, error) {
	g, err := s.GetOrCreate(name)
	if err != nil {
		return nil, err
	}
	return g.Generate(identifier)
}

// Validate checks a token against the named generator's secret. The
// generator must already exist; validation never creates one, since a
// fresh generator would carry a different identity than the minter.
func (s *Set) Validate(name string, token []byte) (bool, error) {
	g, ok := s.Get(name)
	if !ok {
		return false, ErrUnknownGenerator.WithDetails(name)
	}
	return g.Validate(token)
}

// Delete removes a generator by name.
func (s *Set) Delete(name string) {
	sh := s.getShard(name)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.gens, name)
}

// Has checks if a name exists.
func (s *Set) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Count returns the total number of generators.
func (s *Set) Count() int {
	count := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		count += len(sh.gens)
		sh.mu.RUnlock()
	}
	return count
}

// Names returns the names of all registered generators, in no
// particular order.
func (s *Set) Names() []string {
	names := make([]string, 0)
	for _, sh := range s.shards {
		sh.mu.RLock()
		for name := range sh.gens {
			names = append(names, name)
		}
		sh.mu.RUnlock()
	}
	return names
}
