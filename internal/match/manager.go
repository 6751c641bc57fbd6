package match

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lgame/internal/config"
	"lgame/internal/game"
)

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

// Options configures a new match. Zero values pick defaults: human players,
// the standard opening, the layout's side to move, and the configured depth.
type Options struct {
	Player1 Controller
	Player2 Controller
	First   game.Player
	Depth   int
	Layout  *game.Layout
}

func (m *Manager) CreateMatch(opts Options) (*Match, error) {
	var controllers [2]Controller
	for i, c := range [2]Controller{opts.Player1, opts.Player2} {
		switch c {
		case "":
			c = Human
		case Human, Computer:
		default:
			return nil, fmt.Errorf("%w: unknown controller %q", ErrInvalidOptions, c)
		}
		controllers[i] = c
	}

	state := game.NewState()
	if opts.Layout != nil {
		var err error
		if state, err = game.NewStateFromLayout(*opts.Layout); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
	}
	switch {
	case opts.First == 0:
	case opts.First.Valid():
		state.ToMove = opts.First
	default:
		return nil, fmt.Errorf("%w: unknown first player %d", ErrInvalidOptions, opts.First)
	}

	mt := &Match{
		ID:          uuid.NewString(),
		State:       state,
		Controllers: controllers,
		Depth:       m.cfg.Search.ClampDepth(opts.Depth),
		CreatedAt:   time.Now(),
		searcher:    game.NewSearcher(game.NewCache()),
	}
	if winner, over := game.Winner(state); over {
		mt.Winner = winner
	}
	m.store.SaveMatch(mt)

	log.Info().
		Str("match", mt.ID).
		Str("player1", string(controllers[0])).
		Str("player2", string(controllers[1])).
		Stringer("first", state.ToMove).
		Int("depth", mt.Depth).
		Msg("match created")
	return mt, nil
}

func (m *Manager) Get(id string) (*Match, bool) {
	return m.store.GetMatch(id)
}

// ApplyMove commits a move submitted for a human-controlled side after
// checking it against the legal move list.
func (m *Manager) ApplyMove(mt *Match, mv Move) error {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	if err := mt.checkTurn(mv.Player); err != nil {
		return err
	}
	if mt.controller(mv.Player) == Computer {
		return fmt.Errorf("%w: %s is computer-controlled", ErrNotYourTurn, mv.Player)
	}
	if !game.IsLegalMove(mt.State, mv.Player, mv.Piece) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, mv.Piece)
	}

	mv.Piece = game.NewPlacement([4]game.Cell(mv.Piece))
	next := mt.State.ApplyMove(mv.Piece)
	if nr := mv.Neutral; nr != nil {
		index := -1
		for i, c := range next.Neutrals {
			if c == nr.From {
				index = i
			}
		}
		if index < 0 {
			return fmt.Errorf("%w: no neutral piece at %s", ErrIllegalNeutralMove, nr.From)
		}
		if !nr.To.InBounds() || next.Board.At(nr.To) != game.Empty {
			return fmt.Errorf("%w: %s is not an empty cell", ErrIllegalNeutralMove, nr.To)
		}
		next = next.ApplyNeutralMove(index, nr.To)
	}

	m.commit(mt, mv, next)
	return nil
}

// BotMove searches for and commits the move of a computer-controlled side:
// the best L placement first, then the neutral relocation that hurts the
// opponent most, if any.
func (m *Manager) BotMove(mt *Match) (Move, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	mover := mt.State.ToMove
	if err := mt.checkTurn(mover); err != nil {
		return Move{}, err
	}
	if mt.controller(mover) != Computer {
		return Move{}, fmt.Errorf("%w: %s", ErrNotComputer, mover)
	}

	start := time.Now()
	piece, value, ok := mt.searcher.ChooseMove(mt.State, mt.Depth)
	if !ok {
		m.finish(mt, mover.Opponent())
		m.store.SaveMatch(mt)
		return Move{}, fmt.Errorf("%w: %s has no legal move", ErrGameOver, mover)
	}

	if limit := m.cfg.Search.CacheLimit; limit > 0 && mt.searcher.Cache().Len() > limit {
		log.Debug().Str("match", mt.ID).Int("entries", mt.searcher.Cache().Len()).Msg("search cache reset")
		mt.searcher.Cache().Reset()
	}

	mv := Move{Player: mover, Piece: piece}
	next := mt.State.ApplyMove(piece)
	if nm, ok := game.ChooseNeutralMove(next, mover); ok {
		mv.Neutral = &NeutralRelocation{From: next.Neutrals[nm.Index], To: nm.To}
		next = next.ApplyNeutralMove(nm.Index, nm.To)
	}

	log.Info().
		Str("match", mt.ID).
		Stringer("player", mover).
		Int("value", value).
		Bool("neutral", mv.Neutral != nil).
		Dur("took", time.Since(start)).
		Msg("bot moved")
	m.commit(mt, mv, next)
	return mv, nil
}

func (mt *Match) checkTurn(player game.Player) error {
	if mt.Winner != 0 {
		return fmt.Errorf("%w: %s won", ErrGameOver, mt.Winner)
	}
	if player != mt.State.ToMove {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, mt.State.ToMove)
	}
	return nil
}

// commit hands the turn over, records mv and tells subscribers. Callers hold
// mt.mu.
func (m *Manager) commit(mt *Match, mv Move, next game.State) {
	mt.State = next.EndTurn()
	mt.History = append(mt.History, mv)
	winner, over := game.Winner(mt.State)
	if over {
		mt.Winner = winner
	}
	m.store.SaveMatch(mt)
	if m.hub != nil {
		m.hub.Broadcast(mt.ID, "move-applied", gin.H{"move": mv.View(), "match": mt.view()})
	}
	if over {
		m.finish(mt, winner)
	}
}

// finish records winner and announces the end of the match. Callers hold
// mt.mu and persist the match.
func (m *Manager) finish(mt *Match, winner game.Player) {
	mt.Winner = winner
	log.Info().Str("match", mt.ID).Stringer("winner", winner).Int("plies", len(mt.History)).Msg("match over")
	if m.hub != nil {
		m.hub.Broadcast(mt.ID, "game-over", gin.H{"winner": winner, "match": mt.view()})
	}
}
