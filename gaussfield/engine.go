package gaussfield

import (
	"fmt"
	"math"
	"strings"

	"github.com/equinor/aps-gaussfield/corr"
	"github.com/equinor/aps-gaussfield/distuv"
	"github.com/equinor/aps-gaussfield/kriging"
)

// Flavour selects the pattern richness of a draw, per spec.md §4.6.
type Flavour int

const (
	Simple Flavour = iota
	Standard
	Detailed
)

func (f Flavour) krigingFlavour() kriging.Flavour {
	switch f {
	case Standard:
		return kriging.Standard
	case Detailed:
		return kriging.Detailed
	default:
		return kriging.Simple
	}
}

// Engine owns the pattern catalogue, the Gaussian noise source, and
// the working grid for a single draw. Ported from the process-wide
// state SimGaussField2D held across drawGridSimple/Standard/Detailed
// and its helpers (init_weights_s, make_patt, draw_node), collapsed
// onto an instance instead of process globals (spec.md §9).
type Engine struct {
	Model corr.Model
	Src   *distuv.CachedNormal

	cat     kriging.Catalogue
	builder kriging.PatternBuilder
	grid    *Grid
	drawn   []bool
	mxind   int
	m       int

	// Messages accumulates the informational lines the original
	// engine sent through moduleMessage; gaussfield is not a logging
	// collaborator (SPEC_FULL.md §3.2), so callers drain this and
	// forward it to their own logger.
	Messages []string
}

// NewEngine allocates the working grid for a draw of dyadic order m
// (mxind = 2^m + 1) and returns an Engine ready for DrawSimple,
// DrawStandard, or DrawDetailed.
func NewEngine(model corr.Model, src *distuv.CachedNormal, m int) *Engine {
	mxind := (1 << uint(m)) + 1
	return &Engine{
		Model: model,
		Src:   src,
		grid:  NewGrid(1, mxind, 1, mxind),
		drawn: make([]bool, mxind*mxind),
		mxind: mxind,
		m:     m,
	}
}

// Grid returns the working grid built up by a Draw* call.
func (e *Engine) Grid() *Grid { return e.grid }

func (e *Engine) drawnIndex(x, y int) int {
	return (x - 1) + (y-1)*e.mxind
}

func (e *Engine) isDrawn(x, y int) bool {
	if x < 1 || x > e.mxind || y < 1 || y > e.mxind {
		return false
	}
	return e.drawn[e.drawnIndex(x, y)]
}

func (e *Engine) markDrawn(x, y int) {
	e.drawn[e.drawnIndex(x, y)] = true
}

const cornerPattern = 1

// cornerBootstrap draws the four corner nodes (1,1), (mxind,mxind),
// (mxind,1), (1,mxind) in that order, with progressively growing
// already-drawn-neighbour sets (0, 1, 2, 3 neighbours), each solved
// fresh. Ported verbatim (offsets and order) from the corner section
// of draw2d_ss_1s/draw2d_ss_2s.
func (e *Engine) cornerBootstrap() error {
	lag := e.mxind - 1
	e.cat.ResetOffsets()

	// Corner (1,1): no already-drawn neighbours.
	if err := e.solveAndDraw(cornerPattern, 0, nil, 1, 1); err != nil {
		return err
	}
	// Corner (mxind,mxind): one neighbour, towards (1,1).
	if err := e.solveAndDraw(cornerPattern, 1, []kriging.Offset{{Dx: -lag, Dy: -lag}}, e.mxind, e.mxind); err != nil {
		return err
	}
	// Corner (mxind,1): two neighbours, towards (1,1) and (mxind,mxind).
	if err := e.solveAndDraw(cornerPattern, 2, []kriging.Offset{{Dx: -lag, Dy: 0}, {Dx: 0, Dy: lag}}, e.mxind, 1); err != nil {
		return err
	}
	// Corner (1,mxind): three neighbours, towards the other three corners.
	if err := e.solveAndDraw(cornerPattern, 3, []kriging.Offset{{Dx: 0, Dy: -lag}, {Dx: lag, Dy: 0}, {Dx: lag, Dy: -lag}}, 1, e.mxind); err != nil {
		return err
	}
	return nil
}

// solveAndDraw installs the given (already-scaled) offsets into
// pattern, solves simple kriging weights for them, and draws node
// (x,y) using the result.
func (e *Engine) solveAndDraw(pattern, n int, offsets []kriging.Offset, x, y int) error {
	for k, o := range offsets {
		e.cat.SetOffset(pattern, 1, k+1, o.Dx, o.Dy)
	}
	if err := e.cat.SolveSimple(pattern, n, e.Model); err != nil {
		return &KernelError{Component: "pattern solve", Detail: "corner bootstrap", Err: err}
	}
	e.drawNode(pattern, n, x, y)
	return nil
}

// drawNode computes value = sum_k weights[pattern][k]*grid[x+dx][y+dy]
// + noise(residual_var[pattern]) and writes it to (x,y), then marks
// (x,y) as drawn so later nodes at this and subsequent levels can
// reference it. Ported from draw_node.
func (e *Engine) drawNode(pattern, n, x, y int) {
	value := 0.0
	offsets := e.cat.Offsets(pattern, n)
	for k, o := range offsets {
		value += e.cat.Weight(pattern, k+1) * e.grid.At(x+o.Dx, y+o.Dy)
	}
	sigma := math.Sqrt(e.cat.ResidualVariance(pattern))
	value += e.Src.Sample(sigma)
	e.grid.Set(x, y, value)
	e.markDrawn(x, y)
}

// levelCache maps a bounds-and-draw-order-filtered neighbourhood
// signature to the pattern id it was installed and solved under, so
// every node sharing an identical geometry at this level reuses one
// solve -- the tractability mechanism spec.md §4.4 calls out -- even
// though the geometry now varies with a node's position in the sweep.
// When a level meets more than kriging.MaxPatterns distinct geometries,
// patternFor clears the catalogue and the cache and hands out ids from
// 1 again, so a geometry met again after that is solved a second time.
type levelCache struct {
	next int
	ids  map[string]int
}

func newLevelCache() *levelCache {
	return &levelCache{next: 1, ids: map[string]int{}}
}

func signature(dirs []kriging.Direction) string {
	var b strings.Builder
	for _, d := range dirs {
		fmt.Fprintf(&b, "%d,%d;", d.UX, d.UY)
	}
	return b.String()
}

// patternFor filters the flavour/role's candidate neighbourhood down
// to the offsets that are actually in bounds and already drawn at
// (x,y), installs and solves that exact geometry the first time it is
// seen at this level (caching the pattern id by signature for reuse),
// and returns the pattern id and neighbour count ready for drawNode.
func (e *Engine) patternFor(cache *levelCache, flavour Flavour, role kriging.Role, lag, x, y int) (pattern, n int, err error) {
	candidates := e.builder.Build(flavour.krigingFlavour(), role)
	filtered := make([]kriging.Direction, 0, len(candidates))
	for _, d := range candidates {
		if !d.InBounds(lag, x, y, e.mxind) {
			continue
		}
		nx, ny := d.Target(lag, x, y)
		if e.isDrawn(nx, ny) {
			filtered = append(filtered, d)
		}
	}

	key := signature(filtered)
	pattern, ok := cache.ids[key]
	if !ok {
		if cache.next > kriging.MaxPatterns {
			// Catalogue full: start over; a geometry seen again is re-solved.
			e.cat.ResetOffsets()
			cache.ids = map[string]int{}
			cache.next = 1
		}
		pattern = cache.next
		cache.next++
		n = e.builder.InstallOffsets(&e.cat, pattern, lag, filtered)
		if err := e.cat.SolveSimple(pattern, n, e.Model); err != nil {
			return 0, 0, &KernelError{Component: "pattern solve", Detail: "refinement level", Err: err}
		}
		cache.ids[key] = pattern
	}
	return pattern, len(filtered), nil
}

// drawLevel installs and solves, for every distinct position-filtered
// neighbourhood encountered, the patterns needed at this level
// (centre, tilted, four edges) at the given flavour's ring depth, then
// draws every node in the schedule draw2d_ss_1s/2s/3s use: centres,
// then tilted midpoints, then the four border edges. A node's
// neighbourhood only ever includes candidates that are in bounds and
// already drawn, so richness grows from the level's first row/column
// (fewest neighbours) towards the interior (the flavour's full ring
// depth), matching spec.md §4.6.
func (e *Engine) drawLevel(flavour Flavour, level, lag int) error {
	cache := newLevelCache()
	e.cat.ResetOffsets()

	span := 1 << uint(level)

	for i := 1; i <= span; i++ {
		x := (2*i-1)*lag + 1
		for j := 1; j <= span; j++ {
			y := (2*j-1)*lag + 1
			pattern, n, err := e.patternFor(cache, flavour, kriging.RoleCentre, lag, x, y)
			if err != nil {
				return err
			}
			e.drawNode(pattern, n, x, y)
		}
	}

	for i := 1; i <= span-1; i++ {
		x := 2*i*lag + 1
		for j := 1; j <= span; j++ {
			y := (2*j-1)*lag + 1

			pattern, n, err := e.patternFor(cache, flavour, kriging.RoleTilted, lag, x, y)
			if err != nil {
				return err
			}
			e.drawNode(pattern, n, x, y)

			pattern, n, err = e.patternFor(cache, flavour, kriging.RoleTilted, lag, y, x)
			if err != nil {
				return err
			}
			e.drawNode(pattern, n, y, x)
		}
	}

	for i := 1; i <= span; i++ {
		x := (2*i-1)*lag + 1
		pattern, n, err := e.patternFor(cache, flavour, kriging.RoleEdgeNorth, lag, x, 1)
		if err != nil {
			return err
		}
		e.drawNode(pattern, n, x, 1)
	}

	for i := 1; i <= span; i++ {
		x := (2*i-1)*lag + 1
		pattern, n, err := e.patternFor(cache, flavour, kriging.RoleEdgeSouth, lag, x, e.mxind)
		if err != nil {
			return err
		}
		e.drawNode(pattern, n, x, e.mxind)
	}

	for j := 1; j <= span; j++ {
		y := (2*j-1)*lag + 1
		pattern, n, err := e.patternFor(cache, flavour, kriging.RoleEdgeWest, lag, 1, y)
		if err != nil {
			return err
		}
		e.drawNode(pattern, n, 1, y)
	}

	for j := 1; j <= span; j++ {
		y := (2*j-1)*lag + 1
		pattern, n, err := e.patternFor(cache, flavour, kriging.RoleEdgeEast, lag, e.mxind, y)
		if err != nil {
			return err
		}
		e.drawNode(pattern, n, e.mxind, y)
	}

	return nil
}

// DrawSimple runs the corner bootstrap then the refinement schedule
// at the simple flavour's ring depth (four-neighbour centre/tilted
// patterns, three-neighbour edges). Does not emit the "Area of
// simulated field" message, matching the original's documented
// drawGridSimple/drawGridStandard asymmetry.
func (e *Engine) DrawSimple() error {
	if err := e.cornerBootstrap(); err != nil {
		return err
	}
	for level := 0; level <= e.m-1; level++ {
		lag := 1 << uint(e.m-level-1)
		if err := e.drawLevel(Simple, level, lag); err != nil {
			return err
		}
	}
	return nil
}

// DrawStandard runs the same corner bootstrap as DrawSimple but at
// the standard flavour's ring depth (adds second-ring neighbours),
// and logs the "Area of simulated field" message the original emits
// only from drawGridStandard.
func (e *Engine) DrawStandard(xsize, ysize float64) error {
	e.Messages = append(e.Messages, areaMessage(xsize, ysize))
	if err := e.cornerBootstrap(); err != nil {
		return err
	}
	for level := 0; level <= e.m-1; level++ {
		lag := 1 << uint(e.m-level-1)
		if err := e.drawLevel(Standard, level, lag); err != nil {
			return err
		}
	}
	return nil
}

// DrawDetailed places the 5x5 seed block instead of bootstrapping
// corners, then runs the refinement schedule at the detailed
// flavour's ring depth starting at level 2 (the seed block already
// covers the first two dyadic levels).
func (e *Engine) DrawDetailed() error {
	if err := (SeedBlock{}).DrawSimple(e.grid, e.mxind, e.Model, e.Src); err != nil {
		return err
	}
	d := stride(e.mxind)
	for i := 1; i <= 5; i++ {
		for j := 1; j <= 5; j++ {
			e.markDrawn(d*(i-1)+1, d*(j-1)+1)
		}
	}
	for level := 2; level <= e.m-1; level++ {
		lag := 1 << uint(e.m-level-1)
		if err := e.drawLevel(Detailed, level, lag); err != nil {
			return err
		}
	}
	return nil
}
