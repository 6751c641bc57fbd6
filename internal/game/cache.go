package game

// Bound says how a cached value relates to the true minimax value of its node.
type Bound uint8

const (
	Exact Bound = iota
	Lower       // true value >= stored value (search failed high)
	Upper       // true value <= stored value (search failed low)
)

// Key is the canonical encoding of a search node. Bits 0-31 hold the board,
// two bits per cell in row-major order; bit 32 is set when Player2 is to
// move, bit 33 when the node maximizes, and the remaining bits hold the
// depth. The board alone fixes both L footprints and the neutral cells, so
// neither cell order within a piece nor neutral numbering reaches the key.
type Key uint64

func KeyOf(b *Board, toMove Player, depth int, maximizing bool) Key {
	var k uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			k = k<<2 | uint64(b[r][c])
		}
	}
	if toMove == Player2 {
		k |= 1 << 32
	}
	if maximizing {
		k |= 1 << 33
	}
	return Key(k | uint64(depth)<<34)
}

type cacheEntry struct {
	value int
	bound Bound
}

// Cache memoizes search values. Entries stay until Reset; a Cache may be
// kept across searches because keys are specific to one position and depth.
// It is not safe for concurrent use.
type Cache struct {
	entries map[Key]cacheEntry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]cacheEntry)}
}

func (c *Cache) Len() int { return len(c.entries) }

func (c *Cache) Reset() { clear(c.entries) }

func (c *Cache) getEntry(k Key) (cacheEntry, bool) {
	e, ok := c.entries[k]
	return e, ok
}

func (c *Cache) storeEntry(k Key, value int, bound Bound) {
	c.entries[k] = cacheEntry{value: value, bound: bound}
}

// usable reports whether a stored entry settles a node searched with
// window (alpha, beta).
func (e cacheEntry) usable(alpha, beta int) bool {
	switch e.bound {
	case Exact:
		return true
	case Lower:
		return e.value >= beta
	case Upper:
		return e.value <= alpha
	}
	return false
}
