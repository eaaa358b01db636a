package gaussfield

import "fmt"

// Grid is a rectangular array addressable by (i, j) over inclusive
// bounds [xstart, xend] x [ystart, yend], stored in column-major
// order: idx = (i-xstart) + (j-ystart)*nxdim. It owns its storage;
// Clone and Sub both duplicate it. Ported from the working-grid
// bookkeeping in SimGaussField2D's drawGrid* routines, generalised
// into a reusable addressable store instead of a raw calloc'd float*.
type Grid struct {
	xstart, xend int
	ystart, yend int
	nxdim        int
	data         []float64
}

// NewGrid allocates a zeroed grid over the given inclusive bounds.
// Panics if xend < xstart or yend < ystart.
func NewGrid(xstart, xend, ystart, yend int) *Grid {
	if xend < xstart || yend < ystart {
		panic("gaussfield: invalid grid bounds")
	}
	nxdim := xend - xstart + 1
	nydim := yend - ystart + 1
	return &Grid{
		xstart: xstart, xend: xend,
		ystart: ystart, yend: yend,
		nxdim: nxdim,
		data:  make([]float64, nxdim*nydim),
	}
}

// Bounds returns the grid's inclusive index range.
func (g *Grid) Bounds() (xstart, xend, ystart, yend int) {
	return g.xstart, g.xend, g.ystart, g.yend
}

// Dims returns (nxdim, nydim), the grid's node counts along each axis.
func (g *Grid) Dims() (nxdim, nydim int) {
	return g.nxdim, g.yend - g.ystart + 1
}

func (g *Grid) index(i, j int) int {
	if i < g.xstart || i > g.xend || j < g.ystart || j > g.yend {
		panic(fmt.Sprintf("gaussfield: index (%d,%d) out of bounds", i, j))
	}
	return (i - g.xstart) + (j-g.ystart)*g.nxdim
}

// At returns the value stored at (i, j).
func (g *Grid) At(i, j int) float64 {
	return g.data[g.index(i, j)]
}

// Set stores v at (i, j).
func (g *Grid) Set(i, j int, v float64) {
	g.data[g.index(i, j)] = v
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		xstart: g.xstart, xend: g.xend,
		ystart: g.ystart, yend: g.yend,
		nxdim: g.nxdim,
		data:  make([]float64, len(g.data)),
	}
	copy(cp.data, g.data)
	return cp
}

// Sub crops g to the inclusive window [xstart,xend] x [ystart,yend],
// returning a new grid with fresh storage. Panics if the window is
// not contained in g's bounds.
func (g *Grid) Sub(xstart, xend, ystart, yend int) *Grid {
	if xstart < g.xstart || xend > g.xend || ystart < g.ystart || yend > g.yend {
		panic("gaussfield: crop window exceeds grid bounds")
	}
	out := NewGrid(xstart, xend, ystart, yend)
	for j := ystart; j <= yend; j++ {
		for i := xstart; i <= xend; i++ {
			out.Set(i, j, g.At(i, j))
		}
	}
	return out
}
