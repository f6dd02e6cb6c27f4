package game

// Secondary heuristics used to compare candidate boards. None of them is part
// of the official score.

// RegionCount counts regions, capital included. Fewer means larger regions.
func (b *Board) RegionCount() int {
	return len(b.Regions())
}

// Area is the area of the bounding box of the laid tiles.
func (b *Board) Area() int {
	minX, maxX, minY, maxY := b.extremities()
	return (maxX - minX + 1) * (maxY - minY + 1)
}

// Perimeter is the perimeter of the bounding box of the laid tiles.
func (b *Board) Perimeter() int {
	minX, maxX, minY, maxY := b.extremities()
	return 2 * ((maxX - minX + 1) + (maxY - minY + 1))
}

// LargestRegion is the size of the biggest region.
func (b *Board) LargestRegion() int {
	largest := 0
	for _, r := range b.Regions() {
		largest = max(largest, r.Size())
	}
	return largest
}

// Crowns totals the crowns of the kingdom.
func (b *Board) Crowns() int {
	crowns := 0
	for _, t := range b.tiles {
		crowns += t.Crowns
	}
	return crowns
}
