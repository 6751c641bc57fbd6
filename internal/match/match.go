package match

import (
	"errors"
	"sync"
	"time"

	"lgame/internal/game"
	"lgame/internal/shared"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidOptions     = errors.New("invalid match options")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrIllegalMove        = errors.New("illegal move")
	ErrIllegalNeutralMove = errors.New("illegal neutral move")
	ErrGameOver           = errors.New("game is over")
	ErrNotComputer        = errors.New("side to move is not computer-controlled")
)

// Controller says who picks the moves for one side.
type Controller string

const (
	Human    Controller = "human"
	Computer Controller = "ai"
)

type NeutralRelocation struct {
	From game.Cell
	To   game.Cell
}

// Move is one ply: an L placement and an optional neutral relocation.
type Move struct {
	Player  game.Player
	Piece   game.Placement
	Neutral *NeutralRelocation
}

func (mv Move) View() shared.MoveView {
	v := shared.MoveView{Player: mv.Player, Piece: shared.PlacementCoords(mv.Piece)}
	if mv.Neutral != nil {
		v.Neutral = &shared.NeutralView{From: shared.CoordOf(mv.Neutral.From), To: shared.CoordOf(mv.Neutral.To)}
	}
	return v
}

// Match is one game between two controllers. All fields are guarded by mu;
// read them through View.
type Match struct {
	mu          sync.Mutex
	ID          string
	State       game.State
	Controllers [2]Controller
	Depth       int
	Winner      game.Player
	History     []Move
	CreatedAt   time.Time

	// searcher keeps its cache for the life of the match.
	searcher *game.Searcher
}

type Store interface {
	GetMatch(id string) (*Match, bool)
	SaveMatch(m *Match)
}

type Broadcaster interface {
	Broadcast(matchID string, action string, data interface{})
}

func (mt *Match) controller(p game.Player) Controller {
	return mt.Controllers[int(p)-1]
}

func (mt *Match) View() shared.MatchView {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.view()
}

func (mt *Match) view() shared.MatchView {
	s := mt.State
	v := shared.MatchView{
		ID:          mt.ID,
		Board:       s.Board,
		Player1:     shared.PlacementCoords(s.Piece(game.Player1)),
		Player2:     shared.PlacementCoords(s.Piece(game.Player2)),
		Neutrals:    shared.Coords(s.Neutrals[:]),
		ToMove:      s.ToMove,
		Controllers: [2]string{string(mt.Controllers[0]), string(mt.Controllers[1])},
		Depth:       mt.Depth,
		Winner:      mt.Winner,
		History:     make([]shared.MoveView, 0, len(mt.History)),
		CreatedAt:   mt.CreatedAt,
	}
	for _, mv := range mt.History {
		v.History = append(v.History, mv.View())
	}
	return v
}

// LegalMoves lists the placements available to player in the current
// position.
func (mt *Match) LegalMoves(player game.Player) []game.Placement {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return game.LegalMoves(mt.State, player)
}
