package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vehicles/components"
)

// Neighbor holds a nearby entity with precomputed spatial data.
type Neighbor struct {
	E      ecs.Entity
	Delta  components.Vec2 // Toroidal delta from query origin
	DistSq float32
}

type gridEntry struct {
	e   ecs.Entity
	pos components.Vec2
}

// SpatialGrid buckets entities by position so radius queries only look at
// nearby cells. Queries wrap around the world edges.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	bounds   Bounds
	cells    [][]gridEntry
}

// NewSpatialGrid creates a spatial grid covering the given world.
func NewSpatialGrid(b Bounds, cellSize float32) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := max(int(b.Width/cellSize), 1)
	rows := max(int(b.Height/cellSize), 1)

	cells := make([][]gridEntry, cols*rows)
	for i := range cells {
		cells[i] = make([]gridEntry, 0, 4)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		bounds:   b,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity at pos.
func (g *SpatialGrid) Insert(e ecs.Entity, pos components.Vec2) {
	col, row := g.cell(pos)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], gridEntry{e: e, pos: pos})
}

// QueryRadiusInto appends every entity strictly closer than radius to pos,
// measured the short way round the world. Reuse dst across calls to avoid
// allocations.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, pos components.Vec2, radius float32) []Neighbor {
	reach := int(radius/g.cellSize) + 1
	centerCol, centerRow := g.cell(pos)
	colStart, colCount := window(centerCol, reach, g.cols)
	rowStart, rowCount := window(centerRow, reach, g.rows)

	for i := 0; i < colCount; i++ {
		col := (colStart + i) % g.cols
		for j := 0; j < rowCount; j++ {
			row := (rowStart + j) % g.rows
			for _, entry := range g.cells[row*g.cols+col] {
				d := g.bounds.ToroidalDelta(pos, entry.pos)
				if CloserThan(components.Vec2{}, d, radius) {
					dst = append(dst, Neighbor{E: entry.e, Delta: d, DistSq: d.Dot(d)})
				}
			}
		}
	}
	return dst
}

// Nearest returns the entity closest to pos among those strictly within
// radius.
func (g *SpatialGrid) Nearest(pos components.Vec2, radius float32) (Neighbor, bool) {
	var best Neighbor
	found := false
	for _, n := range g.QueryRadiusInto(nil, pos, radius) {
		if !found || n.DistSq < best.DistSq {
			best, found = n, true
		}
	}
	return best, found
}

// cell returns the column and row holding pos.
func (g *SpatialGrid) cell(pos components.Vec2) (col, row int) {
	p := g.bounds.Wrap(pos)
	col = min(max(int(p.X/g.cellSize), 0), g.cols-1)
	row = min(max(int(p.Y/g.cellSize), 0), g.rows-1)
	return col, row
}

// window returns the first index and count of cells within reach of center
// on an axis of n cells, visiting each cell at most once.
func window(center, reach, n int) (start, count int) {
	if 2*reach+1 >= n {
		return 0, n
	}
	return (center - reach + n) % n, 2*reach + 1
}
