package board

// DefaultProb4 is the chance that a spawned tile is a 4 instead of a 2.
const DefaultProb4 = 0.1

// Source is the randomness a spawn consumes. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Spawn is a pre-selected tile placement.
type Spawn struct {
	Cell  Cell
	Value int
}

// ChooseSpawn picks an empty cell uniformly and a value of 4 with probability prob4, else 2.
// It returns false when the board has no empty cell; src is not consumed in that case.
func ChooseSpawn(b Board, src Source, prob4 float64) (Spawn, bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return Spawn{}, false
	}

	cell := empty[src.Intn(len(empty))]
	value := 2
	if src.Float64() < prob4 {
		value = 4
	}
	return Spawn{Cell: cell, Value: value}, true
}

// Place returns a copy of b with the spawn applied.
// Placing onto an occupied cell or outside the board leaves b unchanged.
func Place(b Board, s Spawn) Board {
	r, c := s.Cell.Row, s.Cell.Col
	if r < 0 || r >= Size || c < 0 || c >= Size || b[r][c] != 0 {
		return b
	}
	b[r][c] = s.Value
	return b
}

// SpawnTile places one 2 or 4 on a random empty cell using DefaultProb4.
// A full board is returned unchanged.
func SpawnTile(b Board, src Source) Board {
	return SpawnTileWith(b, src, DefaultProb4)
}

// SpawnTileWith is SpawnTile with an explicit probability of spawning a 4.
func SpawnTileWith(b Board, src Source, prob4 float64) Board {
	s, ok := ChooseSpawn(b, src, prob4)
	if !ok {
		return b
	}
	return Place(b, s)
}
