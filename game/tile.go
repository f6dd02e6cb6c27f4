package game

import "fmt"

const MaxCrowns = 3

// Tile is one square of a kingdom.
type Tile struct {
	Terrain Terrain `json:"terrain"`
	Crowns  int     `json:"crowns"`
}

// CapitalTile is the seed tile every kingdom starts with at the origin.
var CapitalTile = Tile{Terrain: Capital}

// placeable reports whether t may be laid on a kingdom: any terrain but the
// capital, carrying 0 to MaxCrowns crowns.
func (t Tile) placeable() bool {
	return t.Terrain.Valid() && t.Terrain != Capital && t.Crowns >= 0 && t.Crowns <= MaxCrowns
}

func (t Tile) String() string {
	if !t.Terrain.Valid() {
		return fmt.Sprintf("?%d", t.Crowns)
	}
	return fmt.Sprintf("%c%d", terrainCodes[t.Terrain], t.Crowns)
}

// Domino is a pair of tiles laid together in a single move. ID orders the draft.
type Domino struct {
	ID    int     `json:"id"`
	Tiles [2]Tile `json:"tiles"`
}

func (d Domino) String() string {
	return fmt.Sprintf("#%d[%s|%s]", d.ID, d.Tiles[0], d.Tiles[1])
}

// Reversed returns the domino rotated by 180 degrees.
func (d Domino) Reversed() Domino {
	return Domino{ID: d.ID, Tiles: [2]Tile{d.Tiles[1], d.Tiles[0]}}
}
