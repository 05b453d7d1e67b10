package priority

// handle addresses an entry in a pool. Handles stay valid until released.
type handle int

// probe is a pseudo handle used as a search pivot; it sorts before every
// entry whose key is greater than or equal to the probe key.
const probe handle = -1

type entry[K, V any] struct {
	key   K
	value V
	seq   uint64
}

// pool is the arena both indices point into.
type pool[K, V any] struct {
	entries []entry[K, V]
	free    []handle
}

func (p *pool[K, V]) alloc(key K, value V, seq uint64) handle {
	e := entry[K, V]{key: key, value: value, seq: seq}
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		p.entries[h] = e
		return h
	}
	p.entries = append(p.entries, e)
	return handle(len(p.entries) - 1)
}

func (p *pool[K, V]) release(h handle) {
	p.entries[h] = entry[K, V]{}
	p.free = append(p.free, h)
}

func (p *pool[K, V]) at(h handle) *entry[K, V] {
	return &p.entries[h]
}

func (p *pool[K, V]) live() int {
	return len(p.entries) - len(p.free)
}
