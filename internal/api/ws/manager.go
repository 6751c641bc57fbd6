package ws

import "lgame/internal/match"

type MatchManager interface {
	Get(id string) (*match.Match, bool)
	ApplyMove(mt *match.Match, mv match.Move) error
	BotMove(mt *match.Match) (match.Move, error)
}
