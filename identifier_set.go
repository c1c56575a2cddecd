package everyuuid

import "sync"

const identifierSetShards = 256

func newIdentifierSet() *identifierSet {
	s := new(identifierSet)
	for x := range s.shards {
		s.shards[x].values = make(map[Identifier]struct{})
	}
	return s
}

// identifierSet is a set of identifiers safe for concurrent use, split
// into shards keyed by the last byte of the identifier.
type identifierSet struct {
	shards [identifierSetShards]identifierSetShard
}

type identifierSetShard struct {
	mu     sync.Mutex
	values map[Identifier]struct{}
}

// insert adds the identifier, returning true if it was not already present.
func (s *identifierSet) insert(id Identifier) (added bool) {
	shard := &s.shards[id[15]]
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if _, ok := shard.values[id]; ok {
		return
	}
	shard.values[id] = struct{}{}
	added = true
	return
}

func (s *identifierSet) len() (count int) {
	for x := range s.shards {
		s.shards[x].mu.Lock()
		count += len(s.shards[x].values)
		s.shards[x].mu.Unlock()
	}
	return
}
