package corr

import "math"

// Exponential implements rho(d) = exp(-3d). Ported from ExpVario2D.
type Exponential struct{ anisotropy }

// NewExponential constructs an Exponential model with principal range
// r1, sub-range r2, rotation angle (radians), and sill.
func NewExponential(r1, r2, angle, sill float64) *Exponential {
	return &Exponential{newAnisotropy(r1, r2, angle, sill)}
}

func (m *Exponential) CorrReal(dx, dy float64) float64 {
	return math.Exp(-3.0 * m.corrDistance(dx, dy))
}
func (m *Exponential) CorrInt(dx, dy int) float64 {
	return math.Exp(-3.0 * m.corrDistanceInt(dx, dy))
}
func (m *Exponential) Vario(dx, dy float64) float64 { return varioFromCorr(m.sill, m.CorrReal(dx, dy)) }
func (m *Exponential) RescaleToGrid(nx, ny int, xsize, ysize float64) {
	m.rescaleToGrid(nx, ny, xsize, ysize)
}
func (m *Exponential) RescaleToPhysical(nx, ny int, xsize, ysize float64) {
	m.rescaleToPhysical(nx, ny, xsize, ysize)
}
func (m *Exponential) Kind() Kind     { return KindExponential }
func (m *Exponential) Power() float64 { return 0 }

// Spherical3 implements the classic 3-dimensional spherical model:
// rho(d) = 1 - d*(1.5 - 0.5d^2) for d<1, else 0. Ported from
// SphVario2D.
type Spherical3 struct{ anisotropy }

func NewSpherical3(r1, r2, angle, sill float64) *Spherical3 {
	return &Spherical3{newAnisotropy(r1, r2, angle, sill)}
}

func sph3(d float64) float64 {
	if d < 1.0 {
		return 1.0 - d*(1.5-0.5*d*d)
	}
	return 0.0
}

func (m *Spherical3) CorrReal(dx, dy float64) float64 { return sph3(m.corrDistance(dx, dy)) }
func (m *Spherical3) CorrInt(dx, dy int) float64       { return sph3(m.corrDistanceInt(dx, dy)) }
func (m *Spherical3) Vario(dx, dy float64) float64 {
	return varioFromCorr(m.sill, m.CorrReal(dx, dy))
}
func (m *Spherical3) RescaleToGrid(nx, ny int, xsize, ysize float64) {
	m.rescaleToGrid(nx, ny, xsize, ysize)
}
func (m *Spherical3) RescaleToPhysical(nx, ny int, xsize, ysize float64) {
	m.rescaleToPhysical(nx, ny, xsize, ysize)
}
func (m *Spherical3) Kind() Kind     { return KindSpherical }
func (m *Spherical3) Power() float64 { return 0 }

// Spherical2 implements the 2-dimensional spherical model. Ported
// from Sph2Vario2D.
type Spherical2 struct{ anisotropy }

func NewSpherical2(r1, r2, angle, sill float64) *Spherical2 {
	return &Spherical2{newAnisotropy(r1, r2, angle, sill)}
}

func sph2(d float64) float64 {
	if d < 1.0 {
		return 1.0 - 2.0*(d*math.Sqrt(1.0-d*d)+math.Asin(d))/math.Pi
	}
	return 0.0
}

func (m *Spherical2) CorrReal(dx, dy float64) float64 { return sph2(m.corrDistance(dx, dy)) }
func (m *Spherical2) CorrInt(dx, dy int) float64       { return sph2(m.corrDistanceInt(dx, dy)) }
func (m *Spherical2) Vario(dx, dy float64) float64 {
	return varioFromCorr(m.sill, m.CorrReal(dx, dy))
}
func (m *Spherical2) RescaleToGrid(nx, ny int, xsize, ysize float64) {
	m.rescaleToGrid(nx, ny, xsize, ysize)
}
func (m *Spherical2) RescaleToPhysical(nx, ny int, xsize, ysize float64) {
	m.rescaleToPhysical(nx, ny, xsize, ysize)
}
func (m *Spherical2) Kind() Kind     { return KindSpherical2 }
func (m *Spherical2) Power() float64 { return 0 }

// Spherical5 implements the 5-dimensional spherical model. Ported
// from Sph5Vario2D.
type Spherical5 struct{ anisotropy }

func NewSpherical5(r1, r2, angle, sill float64) *Spherical5 {
	return &Spherical5{newAnisotropy(r1, r2, angle, sill)}
}

func sph5(d float64) float64 {
	if d < 1.0 {
		return 1.0 - d*(1.875-d*d*(1.25-0.375*d*d))
	}
	return 0.0
}

func (m *Spherical5) CorrReal(dx, dy float64) float64 { return sph5(m.corrDistance(dx, dy)) }
func (m *Spherical5) CorrInt(dx, dy int) float64       { return sph5(m.corrDistanceInt(dx, dy)) }
func (m *Spherical5) Vario(dx, dy float64) float64 {
	return varioFromCorr(m.sill, m.CorrReal(dx, dy))
}
func (m *Spherical5) RescaleToGrid(nx, ny int, xsize, ysize float64) {
	m.rescaleToGrid(nx, ny, xsize, ysize)
}
func (m *Spherical5) RescaleToPhysical(nx, ny int, xsize, ysize float64) {
	m.rescaleToPhysical(nx, ny, xsize, ysize)
}
func (m *Spherical5) Kind() Kind     { return KindSpherical5 }
func (m *Spherical5) Power() float64 { return 0 }

// Gaussian implements rho(d) = exp(-3d^2). Ported from GauVario2D.
type Gaussian struct{ anisotropy }

func NewGaussian(r1, r2, angle, sill float64) *Gaussian {
	return &Gaussian{newAnisotropy(r1, r2, angle, sill)}
}

func (m *Gaussian) CorrReal(dx, dy float64) float64 {
	d := m.corrDistance(dx, dy)
	return math.Exp(-3.0 * d * d)
}
func (m *Gaussian) CorrInt(dx, dy int) float64 {
	d := m.corrDistanceInt(dx, dy)
	return math.Exp(-3.0 * d * d)
}
func (m *Gaussian) Vario(dx, dy float64) float64 { return varioFromCorr(m.sill, m.CorrReal(dx, dy)) }
func (m *Gaussian) RescaleToGrid(nx, ny int, xsize, ysize float64) {
	m.rescaleToGrid(nx, ny, xsize, ysize)
}
func (m *Gaussian) RescaleToPhysical(nx, ny int, xsize, ysize float64) {
	m.rescaleToPhysical(nx, ny, xsize, ysize)
}
func (m *Gaussian) Kind() Kind     { return KindGaussian }
func (m *Gaussian) Power() float64 { return 0 }

// GeneralizedExponential implements rho(d) = exp(-3*d^p), p in (0,2].
// Ported from GenExpVario2D.
type GeneralizedExponential struct {
	anisotropy
	power float64
}

func NewGeneralizedExponential(r1, r2, angle, sill, power float64) *GeneralizedExponential {
	if power <= 0 || power > 2 {
		panic("corr: generalized-exponential power must be in (0, 2]")
	}
	return &GeneralizedExponential{newAnisotropy(r1, r2, angle, sill), power}
}

func (m *GeneralizedExponential) CorrReal(dx, dy float64) float64 {
	d := m.corrDistance(dx, dy)
	return math.Exp(-3.0 * math.Pow(d, m.power))
}
func (m *GeneralizedExponential) CorrInt(dx, dy int) float64 {
	d := m.corrDistanceInt(dx, dy)
	return math.Exp(-3.0 * math.Pow(d, m.power))
}
func (m *GeneralizedExponential) Vario(dx, dy float64) float64 {
	return varioFromCorr(m.sill, m.CorrReal(dx, dy))
}
func (m *GeneralizedExponential) RescaleToGrid(nx, ny int, xsize, ysize float64) {
	m.rescaleToGrid(nx, ny, xsize, ysize)
}
func (m *GeneralizedExponential) RescaleToPhysical(nx, ny int, xsize, ysize float64) {
	m.rescaleToPhysical(nx, ny, xsize, ysize)
}
func (m *GeneralizedExponential) Kind() Kind     { return KindGeneralExponential }
func (m *GeneralizedExponential) Power() float64 { return m.power }

// RationalQuadratic implements rho(d) = 1/(1+c*d^2)^p with
// c = 20^(1/p) - 1. Ported from RatQuadVario2D.
type RationalQuadratic struct {
	anisotropy
	power float64
}

func NewRationalQuadratic(r1, r2, angle, sill, power float64) *RationalQuadratic {
	if power <= 0 {
		panic("corr: rational-quadratic power must be positive")
	}
	return &RationalQuadratic{newAnisotropy(r1, r2, angle, sill), power}
}

func (m *RationalQuadratic) rho(d float64) float64 {
	scal := math.Pow(20.0, 1.0/m.power) - 1.0
	return 1.0 / math.Pow(1.0+scal*d*d, m.power)
}
func (m *RationalQuadratic) CorrReal(dx, dy float64) float64 { return m.rho(m.corrDistance(dx, dy)) }
func (m *RationalQuadratic) CorrInt(dx, dy int) float64       { return m.rho(m.corrDistanceInt(dx, dy)) }
func (m *RationalQuadratic) Vario(dx, dy float64) float64 {
	return varioFromCorr(m.sill, m.CorrReal(dx, dy))
}
func (m *RationalQuadratic) RescaleToGrid(nx, ny int, xsize, ysize float64) {
	m.rescaleToGrid(nx, ny, xsize, ysize)
}
func (m *RationalQuadratic) RescaleToPhysical(nx, ny int, xsize, ysize float64) {
	m.rescaleToPhysical(nx, ny, xsize, ysize)
}
func (m *RationalQuadratic) Kind() Kind     { return KindRationalQuadratic }
func (m *RationalQuadratic) Power() float64 { return m.power }

// WhiteNoiseModel implements rho(0,0) = 1, rho(dx,dy) = 0 otherwise.
// Ported from WhiteVario2D. Its anisotropy fields are unused but kept
// for a uniform constructor and interface shape.
type WhiteNoiseModel struct{ anisotropy }

func NewWhiteNoise(r1, r2, angle, sill float64) *WhiteNoiseModel {
	return &WhiteNoiseModel{newAnisotropy(r1, r2, angle, sill)}
}

func (m *WhiteNoiseModel) CorrReal(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 1.0
	}
	return 0.0
}
func (m *WhiteNoiseModel) CorrInt(dx, dy int) float64 {
	if dx == 0 && dy == 0 {
		return 1.0
	}
	return 0.0
}
func (m *WhiteNoiseModel) Vario(dx, dy float64) float64 {
	return varioFromCorr(m.sill, m.CorrReal(dx, dy))
}
func (m *WhiteNoiseModel) RescaleToGrid(nx, ny int, xsize, ysize float64) {
	m.rescaleToGrid(nx, ny, xsize, ysize)
}
func (m *WhiteNoiseModel) RescaleToPhysical(nx, ny int, xsize, ysize float64) {
	m.rescaleToPhysical(nx, ny, xsize, ysize)
}
func (m *WhiteNoiseModel) Kind() Kind     { return KindWhiteNoise }
func (m *WhiteNoiseModel) Power() float64 { return 0 }
