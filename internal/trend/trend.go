// Package trend fits a straight line through the temperature readings
// taken on the retreat, temperature against longitude.
package trend

import (
	"errors"
	"fmt"
	"math"

	"github.com/sajari/regression"

	"berkotech.co/minard/internal/campaign"
)

var (
	ErrTooFewReadings = errors.New("need at least 3 readings")
	ErrDegenerate     = errors.New("readings do not determine a line")
)

// Line is Celsius = Intercept + Slope*longitude.
type Line struct {
	Intercept, Slope float64
	R2               float64
	Formula          string
}

// At returns the fitted temperature at the given longitude.
func (l *Line) At(long float64) float64 {
	return l.Intercept + l.Slope*long
}

// Fit runs an ordinary least squares regression over readings.
func Fit(readings []campaign.Reading) (*Line, error) {
	if len(readings) < 3 {
		return nil, ErrTooFewReadings
	}

	r := new(regression.Regression)
	r.SetObserved("temp")
	r.SetVar(0, "long")
	for _, rd := range readings {
		r.Train(regression.DataPoint(rd.Celsius, []float64{rd.Long}))
	}
	if err := r.Run(); err != nil {
		return nil, fmt.Errorf("regression: %w", err)
	}

	l := &Line{
		Intercept: r.Coeff(0),
		Slope:     r.Coeff(1),
		R2:        r.R2,
		Formula:   r.Formula,
	}
	for _, v := range []float64{l.Intercept, l.Slope} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrDegenerate
		}
	}
	return l, nil
}
