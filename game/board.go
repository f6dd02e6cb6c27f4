package game

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"maps"
	"slices"
	"strings"
)

// DefaultHalfExtent yields a 9x9 playable region around the capital, which
// keeps every kingdom within 5x5 tiles.
const DefaultHalfExtent = 5

// Half extents accepted from configuration or requests. Below the minimum no
// domino fits next to the capital.
const (
	MinHalfExtent = 2
	MaxHalfExtent = 10
)

// Coordinate is a cell on the unbounded plane of a kingdom.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func compareCoordinates(a, b Coordinate) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Placement is an ordered pair of cells receiving the first and second tile
// of a domino. Swapping the pair rotates the domino by 180 degrees.
type Placement struct {
	First  Coordinate `json:"first"`
	Second Coordinate `json:"second"`
}

func (p Placement) String() string {
	return fmt.Sprintf("%s-%s", p.First, p.Second)
}

func (p Placement) Reversed() Placement {
	return Placement{First: p.Second, Second: p.First}
}

// Adjacent reports whether both cells share an edge.
func (p Placement) Adjacent() bool {
	dx, dy := p.First.X-p.Second.X, p.First.Y-p.Second.Y
	return dx*dx+dy*dy == 1
}

func (p Placement) cells() [2]Coordinate {
	return [2]Coordinate{p.First, p.Second}
}

func comparePlacements(a, b Placement) int {
	if c := compareCoordinates(a.First, b.First); c != 0 {
		return c
	}
	return compareCoordinates(a.Second, b.Second)
}

// Bounds is the open rectangle new tiles must be laid in.
type Bounds struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

func (b Bounds) contains(c Coordinate) bool {
	return c.X > b.MinX && c.X < b.MaxX && c.Y > b.MinY && c.Y < b.MaxY
}

type BoardOption func(b *Board)

// WithHalfExtent sets the half width and half height of the playable region.
func WithHalfExtent(width, height int) BoardOption {
	return func(b *Board) {
		if width > 0 {
			b.halfWidth = width
		}
		if height > 0 {
			b.halfHeight = height
		}
	}
}

// Board is the kingdom of one player: a sparse map of laid tiles seeded with
// the capital at the origin, plus the frontier of free cells and free domino
// placements derived from it.
type Board struct {
	halfWidth  int
	halfHeight int
	tiles      map[Coordinate]Tile
	bounds     Bounds
	freeCells  map[Coordinate]struct{}
	placements map[Placement]struct{}
}

var origin = Coordinate{}

func NewBoard(options ...BoardOption) *Board {
	b := &Board{
		halfWidth:  DefaultHalfExtent,
		halfHeight: DefaultHalfExtent,
		tiles:      map[Coordinate]Tile{origin: CapitalTile},
	}
	for _, option := range options {
		option(b)
	}
	b.refresh()
	return b
}

// Neighbors returns the four orthogonal neighbours of c (east, north, west, south).
func Neighbors(c Coordinate) [4]Coordinate {
	return [4]Coordinate{
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
	}
}

// IsLegalRegion reports whether c lies strictly inside the current bounds.
func (b *Board) IsLegalRegion(c Coordinate) bool {
	return b.bounds.contains(c)
}

func (b *Board) HalfExtent() (width, height int) {
	return b.halfWidth, b.halfHeight
}

func (b *Board) Bounds() Bounds {
	return b.bounds
}

// Len returns the number of laid tiles, capital included.
func (b *Board) Len() int {
	return len(b.tiles)
}

func (b *Board) Tile(c Coordinate) (Tile, bool) {
	t, ok := b.tiles[c]
	return t, ok
}

// Tiles returns a copy of the laid tiles.
func (b *Board) Tiles() map[Coordinate]Tile {
	return maps.Clone(b.tiles)
}

func (b *Board) occupied(c Coordinate) bool {
	_, ok := b.tiles[c]
	return ok
}

// Place lays tiles[0] on p.First and tiles[1] on p.Second. Every check runs
// before the first write, so a failed Place leaves the board unchanged.
func (b *Board) Place(p Placement, tiles [2]Tile) error {
	for _, t := range tiles {
		if !t.placeable() {
			return fmt.Errorf("place %s: tile %s: %w", p, t, ErrInvalidTile)
		}
	}
	if !p.Adjacent() {
		return fmt.Errorf("place %s: %w", p, ErrInvalidAdjacency)
	}
	for _, c := range p.cells() {
		if b.occupied(c) {
			return fmt.Errorf("place %s: cell %s: %w", p, c, ErrCellOccupied)
		}
	}
	for _, c := range p.cells() {
		if !b.IsLegalRegion(c) {
			return fmt.Errorf("place %s: cell %s: %w", p, c, ErrOutOfBounds)
		}
	}
	if !b.HasPlacement(p) || !b.matches(p, tiles) {
		return fmt.Errorf("place %s: %w", p, ErrNotConnected)
	}

	b.tiles[p.First] = tiles[0]
	b.tiles[p.Second] = tiles[1]
	b.refresh()
	return nil
}

// PlaceDomino lays d with its first tile on p.First.
func (b *Board) PlaceDomino(p Placement, d Domino) error {
	return b.Place(p, d.Tiles)
}

// Copy returns a board sharing no state with b.
func (b *Board) Copy() *Board {
	return &Board{
		halfWidth:  b.halfWidth,
		halfHeight: b.halfHeight,
		tiles:      maps.Clone(b.tiles),
		bounds:     b.bounds,
		freeCells:  maps.Clone(b.freeCells),
		placements: maps.Clone(b.placements),
	}
}

// HasPlacement reports whether p belongs to the raw frontier.
func (b *Board) HasPlacement(p Placement) bool {
	_, ok := b.placements[p]
	return ok
}

// FrontierPlacements returns the raw frontier, sorted, regardless of terrain.
func (b *Board) FrontierPlacements() []Placement {
	placements := make([]Placement, 0, len(b.placements))
	for p := range b.placements {
		placements = append(placements, p)
	}
	slices.SortFunc(placements, comparePlacements)
	return placements
}

// FreeCells returns the empty legal cells touching the kingdom, sorted.
func (b *Board) FreeCells() []Coordinate {
	cells := make([]Coordinate, 0, len(b.freeCells))
	for c := range b.freeCells {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCoordinates)
	return cells
}

// extremities returns the bounding box of the laid tiles.
func (b *Board) extremities() (minX, maxX, minY, maxY int) {
	for c := range b.tiles {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return minX, maxX, minY, maxY
}

// refresh recomputes bounds and frontier from scratch: the bounds can shrink
// after any placement, which invalidates frontier members anywhere.
func (b *Board) refresh() {
	minX, maxX, minY, maxY := b.extremities()
	b.bounds = Bounds{
		MinX: -b.halfWidth + maxX,
		MaxX: b.halfWidth + minX,
		MinY: -b.halfHeight + maxY,
		MaxY: b.halfHeight + minY,
	}

	b.freeCells = make(map[Coordinate]struct{})
	for c := range b.tiles {
		for _, n := range Neighbors(c) {
			if !b.occupied(n) && b.IsLegalRegion(n) {
				b.freeCells[n] = struct{}{}
			}
		}
	}

	b.placements = make(map[Placement]struct{})
	for c := range b.freeCells {
		for _, n := range Neighbors(c) {
			if b.occupied(n) || !b.IsLegalRegion(n) {
				continue
			}
			p := Placement{First: c, Second: n}
			b.placements[p] = struct{}{}
			b.placements[p.Reversed()] = struct{}{}
		}
	}
}

// matches reports whether at least one half of the domino touches a laid tile
// of the same terrain or the capital.
func (b *Board) matches(p Placement, tiles [2]Tile) bool {
	for i, c := range p.cells() {
		for _, n := range Neighbors(c) {
			if t, ok := b.tiles[n]; ok && t.Terrain.Matches(tiles[i].Terrain) {
				return true
			}
		}
	}
	return false
}

// ToMatrix returns the open interior of the bounds, top row first. Empty
// cells are nil.
func (b *Board) ToMatrix() [][]*Tile {
	var matrix [][]*Tile
	for y := b.bounds.MaxY - 1; y > b.bounds.MinY; y-- {
		row := make([]*Tile, 0, b.bounds.MaxX-b.bounds.MinX-1)
		for x := b.bounds.MinX + 1; x < b.bounds.MaxX; x++ {
			var cell *Tile
			if t, ok := b.tiles[Coordinate{X: x, Y: y}]; ok {
				cell = &t
			}
			row = append(row, cell)
		}
		matrix = append(matrix, row)
	}
	return matrix
}

// Hash fingerprints the laid tiles.
func (b *Board) Hash() uint64 {
	coords := make([]Coordinate, 0, len(b.tiles))
	for c := range b.tiles {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, compareCoordinates)

	hasher := fnv.New64a()
	for _, c := range coords {
		t := b.tiles[c]
		binary.Write(hasher, binary.LittleEndian, [4]int64{int64(c.X), int64(c.Y), int64(t.Terrain), int64(t.Crowns)})
	}
	return hasher.Sum64()
}

// String draws the whole initial region; cells outside the current bounds are X.
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.halfHeight; y >= -b.halfHeight; y-- {
		fmt.Fprintf(&sb, "%3d ", y)
		for x := -b.halfWidth; x <= b.halfWidth; x++ {
			c := Coordinate{X: x, Y: y}
			switch t, ok := b.tiles[c]; {
			case ok:
				fmt.Fprintf(&sb, " %s", t)
			case b.IsLegalRegion(c):
				sb.WriteString("  .")
			default:
				sb.WriteString("  X")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    ")
	for x := -b.halfWidth; x <= b.halfWidth; x++ {
		fmt.Fprintf(&sb, "%3d", x)
	}
	sb.WriteString("\n")
	return sb.String()
}
