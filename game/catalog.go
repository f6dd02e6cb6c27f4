package game

// CatalogSize is the number of dominoes in a full box.
const CatalogSize = 48

type catalogEntry struct {
	id       int
	terrain1 Terrain
	crowns1  int
	terrain2 Terrain
	crowns2  int
}

// The 48 dominoes of the base game, in draft order.
var catalog = [CatalogSize]catalogEntry{
	{1, Field, 0, Field, 0},
	{2, Field, 0, Field, 0},
	{3, Forest, 0, Forest, 0},
	{4, Forest, 0, Forest, 0},
	{5, Forest, 0, Forest, 0},
	{6, Forest, 0, Forest, 0},
	{7, Lake, 0, Lake, 0},
	{8, Lake, 0, Lake, 0},
	{9, Lake, 0, Lake, 0},
	{10, Meadow, 0, Meadow, 0},
	{11, Meadow, 0, Meadow, 0},
	{12, Swamp, 0, Swamp, 0},
	{13, Forest, 0, Field, 0},
	{14, Lake, 0, Field, 0},
	{15, Meadow, 0, Field, 0},
	{16, Swamp, 0, Meadow, 0},
	{17, Lake, 0, Forest, 0},
	{18, Meadow, 0, Forest, 0},
	{19, Forest, 0, Field, 1},
	{20, Lake, 0, Field, 1},
	{21, Meadow, 0, Field, 1},
	{22, Swamp, 0, Field, 1},
	{23, Mine, 0, Field, 1},
	{24, Field, 0, Forest, 1},
	{25, Field, 0, Forest, 1},
	{26, Field, 0, Forest, 1},
	{27, Field, 0, Forest, 1},
	{28, Lake, 0, Forest, 1},
	{29, Meadow, 0, Forest, 1},
	{30, Field, 0, Lake, 1},
	{31, Field, 0, Lake, 1},
	{32, Forest, 0, Lake, 1},
	{33, Forest, 0, Lake, 1},
	{34, Forest, 0, Lake, 1},
	{35, Forest, 0, Lake, 1},
	{36, Meadow, 1, Field, 0},
	{37, Meadow, 1, Lake, 0},
	{38, Swamp, 0, Field, 1},
	{39, Swamp, 0, Meadow, 0},
	{40, Field, 0, Mine, 1},
	{41, Meadow, 2, Field, 0},
	{42, Meadow, 2, Lake, 0},
	{43, Swamp, 2, Field, 0},
	{44, Swamp, 2, Meadow, 0},
	{45, Field, 0, Mine, 2},
	{46, Mine, 2, Swamp, 0},
	{47, Mine, 2, Swamp, 0},
	{48, Mine, 3, Field, 0},
}

func (e catalogEntry) domino() Domino {
	return Domino{
		ID: e.id,
		Tiles: [2]Tile{
			{Terrain: e.terrain1, Crowns: e.crowns1},
			{Terrain: e.terrain2, Crowns: e.crowns2},
		},
	}
}

// Catalog returns every domino of the base game ordered by ID.
func Catalog() []Domino {
	dominoes := make([]Domino, 0, CatalogSize)
	for _, e := range catalog {
		dominoes = append(dominoes, e.domino())
	}
	return dominoes
}

// DominoByID looks a domino up in the catalog.
func DominoByID(id int) (Domino, bool) {
	if id < 1 || id > CatalogSize {
		return Domino{}, false
	}
	return catalog[id-1].domino(), true
}
