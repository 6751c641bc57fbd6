package game

// ChooseNeutralMove looks one ply ahead for the neutral relocation that
// leaves mover's opponent with the fewest legal moves. Only cells empty in s
// are considered. ok is false when no relocation beats leaving the neutral
// pieces where they are.
func ChooseNeutralMove(s State, mover Player) (move NeutralMove, ok bool) {
	opponent := mover.Opponent()
	best := Mobility(s, opponent)
	for i := range s.Neutrals {
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if s.Board[r][c] != Empty {
					continue
				}
				dst := Cell{Row: r, Col: c}
				if score := Mobility(s.withNeutral(i, dst), opponent); score < best {
					best = score
					move, ok = NeutralMove{Index: i, To: dst}, true
				}
			}
		}
	}
	return move, ok
}
