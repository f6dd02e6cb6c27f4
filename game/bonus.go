package game

// Optional end-of-game bonuses. They are never part of Score.
const (
	MiddleKingdomBonus = 10
	HarmonyBonus       = 5
)

// MiddleKingdom reports whether the capital sits at the centre of the
// bounding box of the kingdom. A lone capital does not count.
func (b *Board) MiddleKingdom() bool {
	if len(b.tiles) == 1 {
		return false
	}
	minX, maxX, minY, maxY := b.extremities()
	return minX == -maxX && minY == -maxY
}

// Harmony reports whether every cell of the bounding box holds a tile. A lone
// capital does not count.
func (b *Board) Harmony() bool {
	return len(b.tiles) > 1 && len(b.tiles) == b.Area()
}

func (b *Board) Bonus() int {
	bonus := 0
	if b.MiddleKingdom() {
		bonus += MiddleKingdomBonus
	}
	if b.Harmony() {
		bonus += HarmonyBonus
	}
	return bonus
}
