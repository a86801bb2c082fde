package difficulty

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilGrid indicates New was called with a nil grid.
	ErrNilGrid = errors.New("difficulty: grid is nil")
	// ErrBadRadius indicates a density or dispersion radius below 1.
	ErrBadRadius = errors.New("difficulty: radius must be positive")
	// ErrPathOutOfBounds indicates a path cell outside the analyzed grid.
	ErrPathOutOfBounds = errors.New("difficulty: path cell outside grid")
	// ErrDegeneratePath indicates an empty path or one whose chord length is zero.
	ErrDegeneratePath = errors.New("difficulty: path has no extent")
)

// DefaultRadius is the density and dispersion radius of the analyzed maps.
const DefaultRadius = 3

// Options configures an Analyzer.
type Options struct {
	// DensityRadius is R for the (2R+1)×(2R+1) density window.
	DensityRadius int
	// DispersionRadius is the step budget of each dispersion ray.
	DispersionRadius int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns DensityRadius=3, DispersionRadius=3.
func DefaultOptions() Options {
	return Options{DensityRadius: DefaultRadius, DispersionRadius: DefaultRadius}
}

// WithDensityRadius sets the density window radius. Values < 1 are reported
// by New as ErrBadRadius.
func WithDensityRadius(r int) Option {
	return func(o *Options) { o.DensityRadius = r }
}

// WithDispersionRadius sets the dispersion ray budget. Values < 1 are reported
// by New as ErrBadRadius.
func WithDispersionRadius(r int) Option {
	return func(o *Options) { o.DispersionRadius = r }
}

func (o Options) validate() error {
	if o.DensityRadius < 1 {
		return fmt.Errorf("%w: density radius %d", ErrBadRadius, o.DensityRadius)
	}
	if o.DispersionRadius < 1 {
		return fmt.Errorf("%w: dispersion radius %d", ErrBadRadius, o.DispersionRadius)
	}
	return nil
}

// Axis is a line through a cell along which Width is measured.
type Axis int

const (
	// Horizontal runs left-right.
	Horizontal Axis = iota
	// Vertical runs up-down.
	Vertical
	// PosDiagonal runs bottom-left to top-right.
	PosDiagonal
	// NegDiagonal runs top-left to bottom-right.
	NegDiagonal
)

// Axes lists every Axis.
var Axes = [...]Axis{Horizontal, Vertical, PosDiagonal, NegDiagonal}

var axisStep = [...][2]int{
	Horizontal:  {0, 1},
	Vertical:    {1, 0},
	PosDiagonal: {-1, 1},
	NegDiagonal: {1, 1},
}

var axisNames = [...]string{
	Horizontal:  "leftright",
	Vertical:    "updown",
	PosDiagonal: "pos_diag",
	NegDiagonal: "neg_diag",
}

// String returns the axis name used in field names.
func (a Axis) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Field is one scalar per grid cell, indexed [row][col].
type Field [][]float64

// Field names returned by Fields, in display order.
const (
	FieldClosestDist    = "closest_dist"
	FieldDensity        = "density"
	FieldAvgVis         = "avg_vis"
	FieldDispersion     = "dispersion"
	FieldLeftRightWidth = "leftright_width"
	FieldUpDownWidth    = "updown_width"
	FieldPosDiagWidth   = "pos_diag_width"
	FieldNegDiagWidth   = "neg_diag_width"
)

// FieldNames is the display order of Fields.
var FieldNames = []string{
	FieldClosestDist, FieldDensity, FieldAvgVis, FieldDispersion,
	FieldLeftRightWidth, FieldUpDownWidth, FieldPosDiagWidth, FieldNegDiagWidth,
}

// PathStats are the path-level aggregates. Every field but Tortuosity is the
// mean of the per-cell metric over the path cells.
type PathStats struct {
	NearestObstacle         float64
	Visibility              float64
	Dispersion              float64
	CharacteristicDimension float64
	Tortuosity              float64
}

// Values returns the aggregates in report order: nearest obstacle,
// visibility, dispersion, characteristic dimension, tortuosity.
func (s PathStats) Values() []float64 {
	return []float64{s.NearestObstacle, s.Visibility, s.Dispersion, s.CharacteristicDimension, s.Tortuosity}
}
