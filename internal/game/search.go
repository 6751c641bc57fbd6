package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Infinity bounds the search window. Evaluate never leaves
// [-maxPlacements, maxPlacements], so this is out of reach of any real score.
const Infinity = 1 << 20

type Stats struct {
	Nodes     uint64 `json:"nodes"`
	CacheHits uint64 `json:"cacheHits"`
}

// Searcher runs depth-limited minimax with alpha-beta pruning over a
// transposition cache. Player2 always maximizes and Player1 always
// minimizes, whoever asked for the search. A Searcher is not safe for
// concurrent use.
type Searcher struct {
	// Pruning enables alpha-beta cut-offs. With it off the search is plain
	// minimax and returns the same values.
	Pruning bool

	cache *Cache
	stats Stats

	// moves[d] is the move buffer for nodes with d plies remaining. Only one
	// such node is open at a time.
	moves [][]Placement
}

// NewSearcher returns a pruning searcher. A nil cache gets a fresh one.
func NewSearcher(cache *Cache) *Searcher {
	if cache == nil {
		cache = NewCache()
	}
	return &Searcher{Pruning: true, cache: cache}
}

func (sr *Searcher) Cache() *Cache { return sr.cache }

func (sr *Searcher) Stats() Stats { return sr.stats }

// Search returns the minimax value of s with toMove to play and depth plies
// left. A node whose side to move is stuck is scored like a leaf.
func (sr *Searcher) Search(s State, toMove Player, depth, alpha, beta int, maximizing bool) int {
	if depth < 0 {
		panic(fmt.Sprintf("game: negative search depth %d", depth))
	}
	sr.stats.Nodes++

	key := KeyOf(&s.Board, toMove, depth, maximizing)
	if e, ok := sr.cache.getEntry(key); ok && e.usable(alpha, beta) {
		sr.stats.CacheHits++
		return e.value
	}

	if depth == 0 {
		v := Evaluate(s)
		sr.cache.storeEntry(key, v, Exact)
		return v
	}

	moves := AppendLegalMoves(sr.buffer(depth), s, toMove)
	sr.moves[depth] = moves
	if len(moves) == 0 {
		v := Evaluate(s)
		sr.cache.storeEntry(key, v, Exact)
		return v
	}

	alphaOrig, betaOrig := alpha, beta
	opponent := toMove.Opponent()
	var value int
	if maximizing {
		value = -Infinity
		for _, m := range moves {
			score := sr.Search(s.withPiece(toMove, m), opponent, depth-1, alpha, beta, opponent == Player2)
			value = max(value, score)
			alpha = max(alpha, value)
			if sr.Pruning && beta <= alpha {
				break
			}
		}
	} else {
		value = Infinity
		for _, m := range moves {
			score := sr.Search(s.withPiece(toMove, m), opponent, depth-1, alpha, beta, opponent == Player2)
			value = min(value, score)
			beta = min(beta, value)
			if sr.Pruning && beta <= alpha {
				break
			}
		}
	}

	bound := Exact
	switch {
	case value <= alphaOrig:
		bound = Upper
	case value >= betaOrig:
		bound = Lower
	}
	sr.cache.storeEntry(key, value, bound)
	return value
}

// ChooseMove picks the placement for s.ToMove that is best under a depth-ply
// search: highest value for Player2, lowest for Player1, earliest generated
// on ties. ok is false when the side to move has no legal move.
func (sr *Searcher) ChooseMove(s State, depth int) (best Placement, value int, ok bool) {
	if depth < 0 {
		panic(fmt.Sprintf("game: negative search depth %d", depth))
	}
	if depth == 0 {
		depth = 1
	}

	mover := s.ToMove
	moves := LegalMoves(s, mover)
	if len(moves) == 0 {
		return Placement{}, Evaluate(s), false
	}

	start := sr.stats
	opponent := mover.Opponent()
	maximizing := mover == Player2
	alpha, beta := -Infinity, Infinity
	for i, m := range moves {
		v := sr.Search(s.withPiece(mover, m), opponent, depth-1, alpha, beta, opponent == Player2)
		if maximizing {
			if i == 0 || v > value {
				best, value = m, v
			}
			alpha = max(alpha, v)
		} else {
			if i == 0 || v < value {
				best, value = m, v
			}
			beta = min(beta, v)
		}
	}

	log.Debug().
		Stringer("player", mover).
		Int("depth", depth).
		Int("candidates", len(moves)).
		Int("value", value).
		Uint64("nodes", sr.stats.Nodes-start.Nodes).
		Uint64("cacheHits", sr.stats.CacheHits-start.CacheHits).
		Int("cacheSize", sr.cache.Len()).
		Msg("move chosen")
	return best, value, true
}

func (sr *Searcher) buffer(depth int) []Placement {
	for len(sr.moves) <= depth {
		sr.moves = append(sr.moves, make([]Placement, 0, maxPlacements))
	}
	return sr.moves[depth][:0]
}
