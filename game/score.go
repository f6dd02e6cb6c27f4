package game

import "slices"

// Region is a maximal set of orthogonally connected tiles of one terrain.
type Region struct {
	Terrain Terrain
	Cells   []Coordinate
	Crowns  int
}

func (r Region) Size() int {
	return len(r.Cells)
}

// Score is the region's contribution: tiles times crowns.
func (r Region) Score() int {
	return len(r.Cells) * r.Crowns
}

// worklist holds discovered but not yet expanded cells of a region.
type worklist interface {
	push(c Coordinate)
	pop() Coordinate
	empty() bool
}

// stack gives a depth-first traversal.
type stack []Coordinate

func (s *stack) push(c Coordinate) { *s = append(*s, c) }
func (s *stack) empty() bool       { return len(*s) == 0 }
func (s *stack) pop() Coordinate {
	last := len(*s) - 1
	c := (*s)[last]
	*s = (*s)[:last]
	return c
}

// queue gives a breadth-first traversal.
type queue struct {
	items []Coordinate
	head  int
}

func (q *queue) push(c Coordinate) { q.items = append(q.items, c) }
func (q *queue) empty() bool       { return q.head == len(q.items) }
func (q *queue) pop() Coordinate {
	c := q.items[q.head]
	q.head++
	return c
}

// Regions partitions the laid tiles into regions. The capital is always a
// region of its own.
func (b *Board) Regions() []Region {
	return b.regions(&stack{})
}

func (b *Board) regions(pending worklist) []Region {
	starts := make([]Coordinate, 0, len(b.tiles))
	for c := range b.tiles {
		starts = append(starts, c)
	}
	slices.SortFunc(starts, compareCoordinates)

	visited := make(map[Coordinate]bool, len(b.tiles))
	var regions []Region
	for _, start := range starts {
		if visited[start] {
			continue
		}
		terrain := b.tiles[start].Terrain
		region := Region{Terrain: terrain}

		visited[start] = true
		pending.push(start)
		for !pending.empty() {
			c := pending.pop()
			region.Cells = append(region.Cells, c)
			region.Crowns += b.tiles[c].Crowns
			for _, n := range Neighbors(c) {
				t, ok := b.tiles[n]
				if !ok || visited[n] || t.Terrain != terrain {
					continue
				}
				visited[n] = true
				pending.push(n)
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Score is the official kingdom score, recomputed from scratch on every call.
func (b *Board) Score() int {
	return scoreOf(b.Regions())
}

func scoreOf(regions []Region) int {
	score := 0
	for _, r := range regions {
		score += r.Score()
	}
	return score
}
