package game

// Evaluate scores s by mobility: Player2's legal move count minus Player1's.
// Positive values favour Player2.
func Evaluate(s State) int {
	return CountLegalMoves(s, Player2) - CountLegalMoves(s, Player1)
}

// Mobility is the one-sided probe used by the neutral heuristic.
func Mobility(s State, player Player) int {
	return CountLegalMoves(s, player)
}
