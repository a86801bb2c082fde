package difficulty

import (
	"fmt"

	"github.com/katalvlaran/cavenav/grid"
)

// Analyzer evaluates difficulty metrics over one grid.
type Analyzer struct {
	g    *grid.Grid
	opts Options
}

// New returns an Analyzer over g.
func New(g *grid.Grid, opts ...Option) (*Analyzer, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Analyzer{g: g, opts: cfg}, nil
}

// Grid returns the analyzed grid.
func (a *Analyzer) Grid() *grid.Grid { return a.g }

// Options returns the effective options.
func (a *Analyzer) Options() Options { return a.opts }

// field evaluates metric at every cell.
func (a *Analyzer) field(metric func(grid.Coord) float64) Field {
	out := make(Field, a.g.Rows)
	for r := range out {
		out[r] = make([]float64, a.g.Cols)
		for c := range out[r] {
			out[r][c] = metric(grid.Coord{Row: r, Col: c})
		}
	}
	return out
}

// NearestObstacleField evaluates NearestObstacle at every cell.
func (a *Analyzer) NearestObstacleField() Field { return a.field(a.NearestObstacle) }

// DensityField evaluates Density at every cell.
func (a *Analyzer) DensityField() Field { return a.field(a.Density) }

// VisibilityField evaluates Visibility at every cell.
func (a *Analyzer) VisibilityField() Field { return a.field(a.Visibility) }

// DispersionField evaluates Dispersion at every cell.
func (a *Analyzer) DispersionField() Field { return a.field(a.Dispersion) }

// WidthField evaluates Width along axis at every cell.
func (a *Analyzer) WidthField(axis Axis) Field {
	return a.field(func(c grid.Coord) float64 { return a.Width(c, axis) })
}

// CharacteristicDimensionField evaluates CharacteristicDimension at every cell.
func (a *Analyzer) CharacteristicDimensionField() Field {
	return a.field(a.CharacteristicDimension)
}

// Fields computes every named field; keys are listed in FieldNames.
func (a *Analyzer) Fields() map[string]Field {
	out := map[string]Field{
		FieldClosestDist: a.NearestObstacleField(),
		FieldDensity:     a.DensityField(),
		FieldAvgVis:      a.VisibilityField(),
		FieldDispersion:  a.DispersionField(),
	}
	for _, axis := range Axes {
		out[widthFieldName(axis)] = a.WidthField(axis)
	}
	return out
}

func widthFieldName(axis Axis) string {
	return fmt.Sprintf("%s_width", axis)
}
