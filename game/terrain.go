package game

import "fmt"

// Terrain is the landscape printed on one half of a domino.
type Terrain int

const (
	Field Terrain = iota
	Forest
	Lake
	Meadow
	Mine
	Swamp
	Capital // the starting castle tile, matches every terrain
)

var terrainNames = [...]string{
	Field:   "FIELD",
	Forest:  "FOREST",
	Lake:    "LAKE",
	Meadow:  "MEADOW",
	Mine:    "MINE",
	Swamp:   "SWAMP",
	Capital: "CAPITAL",
}

// short codes used by Board.String
var terrainCodes = [...]byte{
	Field:   'F',
	Forest:  'W',
	Lake:    'L',
	Meadow:  'M',
	Mine:    'X',
	Swamp:   'S',
	Capital: 'C',
}

func (t Terrain) Valid() bool {
	return t >= Field && t <= Capital
}

func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// Matches reports whether a tile of terrain t may be laid next to a tile of terrain other.
func (t Terrain) Matches(other Terrain) bool {
	return t == other || t == Capital || other == Capital
}

func ParseTerrain(s string) (Terrain, error) {
	for t, name := range terrainNames {
		if name == s {
			return Terrain(t), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", s)
}

func (t Terrain) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid terrain %d", int(t))
	}
	return []byte(terrainNames[t]), nil
}

func (t *Terrain) UnmarshalText(text []byte) error {
	parsed, err := ParseTerrain(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
