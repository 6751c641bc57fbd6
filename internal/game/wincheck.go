package game

// Winner reports the winning player once the side to move is stuck. Stuck
// means zero legal moves; a single remaining move must still be played.
func Winner(s State) (Player, bool) {
	if CountLegalMoves(s, s.ToMove) == 0 {
		return s.ToMove.Opponent(), true
	}
	return 0, false
}
